package brew

// Unselected is the display value for a choice left empty.
const Unselected = "未選択"

// ChoiceKind identifies one of the select fields
type ChoiceKind int

const (
	RoastLevel ChoiceKind = iota
	Method
	GrindSize
)

var choiceOptions = map[ChoiceKind][]string{
	RoastLevel: {Unselected, "浅煎り", "中煎り", "中深煎り", "深煎り"},
	Method:     {Unselected, "V60ドリッパー", "カリタウェーブ", "フレンチプレス", "エアロプレス", "エスプレッソ", "その他"},
	GrindSize:  {Unselected, "極細挽き", "細挽き", "中細挽き", "中挽き", "中粗挽き", "粗挽き"},
}

// String returns the field label
func (k ChoiceKind) String() string {
	switch k {
	case RoastLevel:
		return "roast level"
	case Method:
		return "method"
	case GrindSize:
		return "grind size"
	default:
		return "unknown"
	}
}

// Choices returns the display values for kind, sentinel first.
func Choices(kind ChoiceKind) []string {
	options := choiceOptions[kind]
	out := make([]string, len(options))
	copy(out, options)
	return out
}

// ChoiceValue maps a display value to its record value; the sentinel
// and anything not in the list become nil.
func ChoiceValue(kind ChoiceKind, display string) *string {
	if display == Unselected {
		return nil
	}
	for _, option := range choiceOptions[kind] {
		if option == display {
			value := option
			return &value
		}
	}
	return nil
}

// ChoiceIndex returns the option index of value, 0 (the sentinel) for nil or unknown values
func ChoiceIndex(kind ChoiceKind, value *string) int {
	if value == nil {
		return 0
	}
	for i, option := range choiceOptions[kind] {
		if option == *value {
			return i
		}
	}
	return 0
}

// ChoiceAt returns the record value at index i, wrapping around the option list
func ChoiceAt(kind ChoiceKind, i int) *string {
	options := choiceOptions[kind]
	n := len(options)
	i = ((i % n) + n) % n
	return ChoiceValue(kind, options[i])
}

// Display renders a nullable choice value
func Display(value *string) string {
	if value == nil {
		return Unselected
	}
	return *value
}
