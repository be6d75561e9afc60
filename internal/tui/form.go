package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/brewlog/internal/brew"
	"github.com/balkashynov/brewlog/internal/parser"
)

// fieldID is a row of the brew form, in display order
type fieldID int

const (
	fieldDate fieldID = iota
	fieldBean
	fieldRoaster
	fieldRoast
	fieldMethod
	fieldGrind
	fieldDose
	fieldWater
	fieldTemp
	fieldDrips
	fieldTime
	fieldRating
	fieldNotes
	fieldCount
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindNumber
	kindDate
	kindChoice
	kindRating
)

var fieldLabels = [fieldCount]string{
	fieldDate:    "Date",
	fieldBean:    "Bean",
	fieldRoaster: "Roaster",
	fieldRoast:   "Roast",
	fieldMethod:  "Method",
	fieldGrind:   "Grind",
	fieldDose:    "Dose (g)",
	fieldWater:   "Water (ml)",
	fieldTemp:    "Temp (°C)",
	fieldDrips:   "Drips",
	fieldTime:    "Time (s)",
	fieldRating:  "Rating",
	fieldNotes:   "Notes",
}

func (f fieldID) kind() fieldKind {
	switch f {
	case fieldBean, fieldRoaster, fieldNotes:
		return kindText
	case fieldDate:
		return kindDate
	case fieldRoast, fieldMethod, fieldGrind:
		return kindChoice
	case fieldRating:
		return kindRating
	default:
		return kindNumber
	}
}

// hasInput reports whether the field is edited by typing
func (f fieldID) hasInput() bool {
	k := f.kind()
	return k == kindText || k == kindNumber || k == kindDate
}

func (f fieldID) choiceKind() brew.ChoiceKind {
	switch f {
	case fieldRoast:
		return brew.RoastLevel
	case fieldMethod:
		return brew.Method
	default:
		return brew.GrindSize
	}
}

func (f fieldID) numberRange() brew.Range {
	switch f {
	case fieldDose:
		return brew.DoseRange
	case fieldWater:
		return brew.WaterRange
	case fieldTemp:
		return brew.TempRange
	case fieldDrips:
		return brew.DripRange
	case fieldTime:
		return brew.TotalTimeRange
	default:
		return brew.RatingRange
	}
}

// newFormInputs builds one text input per typed field
func newFormInputs() [fieldCount]textinput.Model {
	var inputs [fieldCount]textinput.Model
	for i := fieldID(0); i < fieldCount; i++ {
		input := textinput.New()
		input.Prompt = ""
		input.Width = 40
		input.TextStyle = valueStyle
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		inputs[i] = input
	}

	inputs[fieldDate].Placeholder = "today, yesterday, 2 days ago, yyyy-mm-dd"
	inputs[fieldDate].CharLimit = 20
	inputs[fieldBean].Placeholder = "Bean name"
	inputs[fieldBean].CharLimit = brew.MaxBeanNameLen
	inputs[fieldRoaster].Placeholder = "Roaster (optional)"
	inputs[fieldRoaster].CharLimit = brew.MaxRoasterLen
	inputs[fieldNotes].Placeholder = "Tasting notes (optional)"
	inputs[fieldNotes].CharLimit = brew.MaxNotesLen
	inputs[fieldNotes].Width = 60
	inputs[fieldTime].Placeholder = "timer"

	for _, f := range []fieldID{fieldDose, fieldWater, fieldTemp, fieldDrips, fieldTime} {
		inputs[f].CharLimit = 6
		inputs[f].Width = 8
	}
	return inputs
}

// fieldText renders the draft value as the text an input should hold
func fieldText(d brew.Draft, f fieldID, elapsed *int) string {
	switch f {
	case fieldDate:
		return d.BrewDate.Format("2006-01-02")
	case fieldBean:
		return d.BeanName
	case fieldRoaster:
		return d.Roaster
	case fieldNotes:
		return d.Notes
	case fieldDose:
		return strconv.FormatFloat(d.DoseG, 'f', 1, 64)
	case fieldWater:
		return strconv.Itoa(d.WaterML)
	case fieldTemp:
		return strconv.Itoa(d.WaterTempC)
	case fieldDrips:
		return strconv.Itoa(d.DripCount)
	case fieldTime:
		switch {
		case d.TotalTimeOverride != nil:
			return strconv.Itoa(*d.TotalTimeOverride)
		case elapsed != nil:
			return strconv.Itoa(*elapsed)
		default:
			return ""
		}
	default:
		return ""
	}
}

// applyText writes typed input into the draft. Numbers are clamped to
// their range; text the field cannot hold leaves the draft unchanged.
func applyText(d *brew.Draft, f fieldID, text string, now time.Time) error {
	switch f {
	case fieldDate:
		date, err := parser.ParseBrewDate(text, now)
		if err != nil {
			return err
		}
		d.BrewDate = date
	case fieldBean:
		d.BeanName = brew.Truncate(text, brew.MaxBeanNameLen)
	case fieldRoaster:
		d.Roaster = brew.Truncate(text, brew.MaxRoasterLen)
	case fieldNotes:
		d.Notes = brew.Truncate(text, brew.MaxNotesLen)
	case fieldDose:
		v, err := brew.DoseRange.ParseFloat(text)
		if err != nil {
			return err
		}
		d.DoseG = v
	case fieldTime:
		if strings.TrimSpace(text) == "" {
			d.TotalTimeOverride = nil
			return nil
		}
		v, err := brew.TotalTimeRange.ParseInt(text)
		if err != nil {
			return err
		}
		d.TotalTimeOverride = &v
	case fieldWater, fieldTemp, fieldDrips:
		v, err := f.numberRange().ParseInt(text)
		if err != nil {
			return err
		}
		switch f {
		case fieldWater:
			d.WaterML = v
		case fieldTemp:
			d.WaterTempC = v
		default:
			d.DripCount = v
		}
	}
	return nil
}

// stepField moves a choice, number, rating or date by n steps
func stepField(d *brew.Draft, f fieldID, n int, elapsed *int, now time.Time) {
	switch f.kind() {
	case kindChoice:
		kind := f.choiceKind()
		value := brew.ChoiceAt(kind, brew.ChoiceIndex(kind, choiceValue(*d, f))+n)
		switch f {
		case fieldRoast:
			d.RoastLevel = value
		case fieldMethod:
			d.Method = value
		default:
			d.GrindSize = value
		}
	case kindRating:
		d.Rating = brew.RatingRange.StepInt(d.Rating, n)
	case kindDate:
		next := d.BrewDate.AddDate(0, 0, n)
		if !next.After(brew.DateOf(now)) {
			d.BrewDate = next
		}
	case kindNumber:
		switch f {
		case fieldDose:
			d.DoseG = brew.DoseRange.StepFloat(d.DoseG, n)
		case fieldWater:
			d.WaterML = brew.WaterRange.StepInt(d.WaterML, n)
		case fieldTemp:
			d.WaterTempC = brew.TempRange.StepInt(d.WaterTempC, n)
		case fieldDrips:
			d.DripCount = brew.DripRange.StepInt(d.DripCount, n)
		case fieldTime:
			v := brew.TotalTimeRange.StepInt(d.TotalTime(elapsed), n)
			d.TotalTimeOverride = &v
		}
	}
}

func choiceValue(d brew.Draft, f fieldID) *string {
	switch f {
	case fieldRoast:
		return d.RoastLevel
	case fieldMethod:
		return d.Method
	default:
		return d.GrindSize
	}
}

func renderRating(rating int) string {
	rating = brew.RatingRange.ClampInt(rating)
	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(strings.Repeat("★", rating))
	empty := mutedStyle.Render(strings.Repeat("☆", int(brew.RatingRange.Max)-rating))
	return fmt.Sprintf("%s%s %d/%d", filled, empty, rating, int(brew.RatingRange.Max))
}

func renderChoice(value *string, focused bool) string {
	text := brew.Display(value)
	style := valueStyle
	if value == nil {
		style = mutedStyle
	}
	if !focused {
		return style.Render(text)
	}
	arrows := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))
	return arrows.Render("‹ ") + style.Render(text) + arrows.Render(" ›")
}
