package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/brewlog/internal/brew"
)

// ParsedBrew is a brew parsed from the one-line quick syntax. Nil fields
// were not mentioned and keep their draft value.
type ParsedBrew struct {
	BeanName     string
	Roaster      string
	RoastLevel   *string
	Method       *string
	GrindSize    *string
	DoseG        *float64
	WaterML      *int
	WaterTempC   *int
	DripCount    *int
	TotalTimeSec *int
	Rating       *int
	BrewDate     *time.Time
	Errors       []string
}

var (
	roasterRegex  = regexp.MustCompile(`^@(.+)$`)
	doseRegex     = regexp.MustCompile(`^(\d+(?:\.\d+)?)g$`)
	waterRegex    = regexp.MustCompile(`^(\d+)ml$`)
	tempRegex     = regexp.MustCompile(`^(\d+)(?:c|°c)$`)
	secondsRegex  = regexp.MustCompile(`^(\d+)s$`)
	clockRegex    = regexp.MustCompile(`^(\d{1,2}):([0-5]\d)$`)
	ratingRegex   = regexp.MustCompile(`^\+(\d+)$`)
	dripRegex     = regexp.MustCompile(`^x(\d+)$`)
	dateRegex     = regexp.MustCompile(`^on:(.+)$`)
	keyValueRegex = regexp.MustCompile(`^(roast|method|grind):(.+)$`)
)

// ParseQuickLog extracts brew fields from a one-line description
// Syntax: "Ethiopia Natural @Glitch 18g 250ml 92c v60 +5 3:05 x2 on:yesterday"
// Words that match nothing become the bean name. Invalid values are
// collected in Errors rather than failing the parse.
func ParseQuickLog(input string, now time.Time) ParsedBrew {
	result := ParsedBrew{Errors: []string{}}
	var beanWords []string

	for _, token := range strings.Fields(input) {
		lower := strings.ToLower(token)

		if m := roasterRegex.FindStringSubmatch(token); m != nil {
			result.Roaster = strings.ReplaceAll(m[1], "_", " ")
			continue
		}
		if m := doseRegex.FindStringSubmatch(lower); m != nil {
			v, _ := strconv.ParseFloat(m[1], 64)
			if outOfRange(brew.DoseRange, v) {
				result.addError("dose", token, brew.DoseRange)
			} else {
				result.DoseG = &v
			}
			continue
		}
		if m := waterRegex.FindStringSubmatch(lower); m != nil {
			result.WaterML = result.intField("water", token, m[1], brew.WaterRange)
			continue
		}
		if m := tempRegex.FindStringSubmatch(lower); m != nil {
			result.WaterTempC = result.intField("temperature", token, m[1], brew.TempRange)
			continue
		}
		if m := secondsRegex.FindStringSubmatch(lower); m != nil {
			result.TotalTimeSec = result.intField("time", token, m[1], brew.TotalTimeRange)
			continue
		}
		if m := clockRegex.FindStringSubmatch(lower); m != nil {
			minutes, _ := strconv.Atoi(m[1])
			seconds, _ := strconv.Atoi(m[2])
			result.TotalTimeSec = result.intField("time", token, strconv.Itoa(minutes*60+seconds), brew.TotalTimeRange)
			continue
		}
		if m := ratingRegex.FindStringSubmatch(lower); m != nil {
			result.Rating = result.intField("rating", token, m[1], brew.RatingRange)
			continue
		}
		if m := dripRegex.FindStringSubmatch(lower); m != nil {
			result.DripCount = result.intField("drip count", token, m[1], brew.DripRange)
			continue
		}
		if m := dateRegex.FindStringSubmatch(lower); m != nil {
			date, err := ParseBrewDate(strings.ReplaceAll(m[1], "_", " "), now)
			if err != nil {
				result.Errors = append(result.Errors, "Invalid date '"+m[1]+"': "+err.Error())
			} else {
				result.BrewDate = &date
			}
			continue
		}
		if m := keyValueRegex.FindStringSubmatch(lower); m != nil {
			kind := map[string]brew.ChoiceKind{"roast": brew.RoastLevel, "method": brew.Method, "grind": brew.GrindSize}[m[1]]
			value, err := NormalizeChoice(kind, token[len(m[1])+1:])
			if err != nil {
				result.Errors = append(result.Errors, err.Error())
			} else {
				result.setChoice(kind, value)
			}
			continue
		}
		if kind, value, ok := bareChoice(lower); ok {
			result.setChoice(kind, value)
			continue
		}

		beanWords = append(beanWords, token)
	}

	result.BeanName = strings.Join(beanWords, " ")
	return result
}

// bareChoice recognises an alias written without a key. Methods win over
// roasts, roasts over grinds, so a bare "medium" is a roast level.
func bareChoice(word string) (brew.ChoiceKind, *string, bool) {
	for _, kind := range []brew.ChoiceKind{brew.Method, brew.RoastLevel, brew.GrindSize} {
		if display, ok := choiceAliases[kind][word]; ok {
			return kind, brew.ChoiceValue(kind, display), true
		}
	}
	return 0, nil, false
}

func (p *ParsedBrew) setChoice(kind brew.ChoiceKind, value *string) {
	switch kind {
	case brew.RoastLevel:
		p.RoastLevel = value
	case brew.Method:
		p.Method = value
	case brew.GrindSize:
		p.GrindSize = value
	}
}

func (p *ParsedBrew) intField(name, token, digits string, r brew.Range) *int {
	v, err := strconv.Atoi(digits)
	if err != nil || outOfRange(r, float64(v)) {
		p.addError(name, token, r)
		return nil
	}
	return &v
}

func (p *ParsedBrew) addError(name, token string, r brew.Range) {
	p.Errors = append(p.Errors, fmt.Sprintf("Invalid %s '%s'. Must be between %g and %g", name, token, r.Min, r.Max))
}

func outOfRange(r brew.Range, v float64) bool {
	return v < r.Min || v > r.Max
}

// Apply copies every parsed field onto the draft. A parsed time becomes
// the manual override.
func (p ParsedBrew) Apply(d *brew.Draft) {
	if p.BeanName != "" {
		d.BeanName = p.BeanName
	}
	if p.Roaster != "" {
		d.Roaster = p.Roaster
	}
	if p.RoastLevel != nil {
		d.RoastLevel = p.RoastLevel
	}
	if p.Method != nil {
		d.Method = p.Method
	}
	if p.GrindSize != nil {
		d.GrindSize = p.GrindSize
	}
	if p.DoseG != nil {
		d.DoseG = *p.DoseG
	}
	if p.WaterML != nil {
		d.WaterML = *p.WaterML
	}
	if p.WaterTempC != nil {
		d.WaterTempC = *p.WaterTempC
	}
	if p.DripCount != nil {
		d.DripCount = *p.DripCount
	}
	if p.TotalTimeSec != nil {
		seconds := *p.TotalTimeSec
		d.TotalTimeOverride = &seconds
	}
	if p.Rating != nil {
		d.Rating = *p.Rating
	}
	if p.BrewDate != nil {
		d.BrewDate = *p.BrewDate
	}
}
