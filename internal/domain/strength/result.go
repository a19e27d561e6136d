package strength

type Color string

const (
	ColorRed        Color = "red"
	ColorOrange     Color = "orange"
	ColorYellow     Color = "yellow"
	ColorLightGreen Color = "lightgreen"
	ColorGreen      Color = "green"
)

const (
	LabelTooShort           = "Too Short"
	LabelCommonPassword     = "Very Weak (Common Password)"
	LabelContainsCommonWord = "Weak (Contains Common Word)"
	LabelContainsName       = "Weak (Contains Name)"
	LabelWeak               = "Weak"
	LabelModerate           = "Moderate"
	LabelStrong             = "Strong"
	LabelVeryStrong         = "Very Strong"
)

const (
	barWidthPerPoint = 16.5
	tipsThreshold    = 4
)

// Labels lists every label Evaluate can produce, weakest first.
var Labels = []string{
	LabelTooShort,
	LabelCommonPassword,
	LabelContainsCommonWord,
	LabelContainsName,
	LabelWeak,
	LabelModerate,
	LabelStrong,
	LabelVeryStrong,
}

type Result struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color Color  `json:"color"`
}

// BarWidth is the filled share of the strength bar, in percent.
func (r Result) BarWidth() float64 {
	return float64(r.Score) * barWidthPerPoint
}

// NeedsTips reports whether the UI should show the password tips panel.
func (r Result) NeedsTips() bool {
	return r.Score < tipsThreshold
}

func (c Color) IsValid() bool {
	switch c {
	case ColorRed, ColorOrange, ColorYellow, ColorLightGreen, ColorGreen:
		return true
	default:
		return false
	}
}

func IsKnownLabel(label string) bool {
	for _, l := range Labels {
		if l == label {
			return true
		}
	}
	return false
}

func tierFor(score int) Result {
	switch {
	case score >= 6:
		return Result{Score: score, Label: LabelVeryStrong, Color: ColorGreen}
	case score == 5:
		return Result{Score: score, Label: LabelStrong, Color: ColorLightGreen}
	case score == 4:
		return Result{Score: score, Label: LabelModerate, Color: ColorYellow}
	default:
		return Result{Score: score, Label: LabelWeak, Color: ColorOrange}
	}
}
