package pricing

import (
	"strings"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
)

// pestRule maps a pest category to its lookup keywords. Rules are ordered;
// the first category with a matching keyword wins.
type pestRule struct {
	category string
	keywords []string
}

var pestRules = []pestRule{
	{"Rodents", []string{"rat", "mice", "mouse", "rodent"}},
	{"Ants", []string{"ant"}},
	{"Cockroaches", []string{"cockroach", "roach"}},
	{"Bedbugs", []string{"bedbug", "bed bug"}},
	{"Wasps", []string{"wasp", "hornet"}},
	{"Birds", []string{"bird", "pigeon", "gull"}},
	{"Spiders", []string{"spider"}},
}

const fallbackCategory = "Other"

// CategoryOf prefers the job's explicit pest type; otherwise it classifies
// by case-insensitive keyword search over title+description.
func CategoryOf(j job.Job) string {
	if j.PestType != "" {
		return j.PestType
	}
	return ClassifyPestType(j.Title + " " + j.Description)
}

func ClassifyPestType(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range pestRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.category
			}
		}
	}
	return fallbackCategory
}

// complexityRule adds (or subtracts) a fixed weight when its keyword occurs
// in the job's description+report text.
type complexityRule struct {
	keyword string
	weight  int
}

var complexityRules = []complexityRule{
	{"extensive", 3},
	{"complex", 3},
	{"follow-up", 2},
	{"infestation", 2},
	{"many", 1},
	{"large", 1},
	{"simple", -2},
	{"small", -1},
	{"routine", -1},
}

// ComplexityScore is an advisory keyword score. It never feeds commission
// or pricing decisions.
func ComplexityScore(j job.Job) int {
	text := strings.ToLower(j.Description + " " + j.CompletionReport)

	score := 0
	for _, rule := range complexityRules {
		if strings.Contains(text, rule.keyword) {
			score += rule.weight
		}
	}

	if count := j.AssigneeCount(); count > 1 {
		score += count - 1
	}

	if score < 0 {
		score = 0
	}
	return score
}
