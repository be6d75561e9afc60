package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/balkashynov/brewlog/internal/brew"
)

// ASCII spellings of every choice value, so they can be typed on the CLI
var choiceAliases = map[brew.ChoiceKind]map[string]string{
	brew.RoastLevel: {
		"light":       "浅煎り",
		"medium":      "中煎り",
		"medium-dark": "中深煎り",
		"mediumdark":  "中深煎り",
		"dark":        "深煎り",
	},
	brew.Method: {
		"v60":          "V60ドリッパー",
		"hario":        "V60ドリッパー",
		"kalita":       "カリタウェーブ",
		"wave":         "カリタウェーブ",
		"press":        "フレンチプレス",
		"french":       "フレンチプレス",
		"frenchpress":  "フレンチプレス",
		"french-press": "フレンチプレス",
		"aero":         "エアロプレス",
		"aeropress":    "エアロプレス",
		"espresso":     "エスプレッソ",
		"other":        "その他",
	},
	brew.GrindSize: {
		"extra-fine":    "極細挽き",
		"extrafine":     "極細挽き",
		"fine":          "細挽き",
		"medium-fine":   "中細挽き",
		"mediumfine":    "中細挽き",
		"medium":        "中挽き",
		"medium-coarse": "中粗挽き",
		"mediumcoarse":  "中粗挽き",
		"coarse":        "粗挽き",
	},
}

// NormalizeChoice maps an alias or display value to the stored value.
// Empty input, "none" and the unselected marker all mean nil.
func NormalizeChoice(kind brew.ChoiceKind, input string) (*string, error) {
	input = strings.TrimSpace(input)
	if input == "" || input == brew.Unselected || strings.EqualFold(input, "none") {
		return nil, nil
	}

	if value := brew.ChoiceValue(kind, input); value != nil {
		return value, nil
	}

	if display, ok := choiceAliases[kind][strings.ToLower(input)]; ok {
		return brew.ChoiceValue(kind, display), nil
	}

	return nil, fmt.Errorf("unknown %s %q. Use: %s", kind, input, strings.Join(ChoiceAliases(kind), ", "))
}

// ChoiceAliases lists the accepted ASCII aliases for kind
func ChoiceAliases(kind brew.ChoiceKind) []string {
	aliases := make([]string, 0, len(choiceAliases[kind]))
	for alias := range choiceAliases[kind] {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
