package theme

const (
	DarkName  = "Dark"
	LightName = "Light"
)

var defaultSpacing = Spacing{
	ItemSpacing:   [2]float64{8, 6},
	ButtonPadding: [2]float64{12, 6},
	WindowMargin:  8,
	PanelMargin:   6,
}

var defaultTypography = Typography{
	FontSize:     14,
	CodeFontSize: 13,
}

// Dark returns the built-in dark theme.
func Dark() Theme {
	return Theme{
		Name: DarkName,
		Colors: Colors{
			WindowBg:      RGB{5, 5, 5},
			PanelBg:       RGB{10, 10, 10},
			EditorBg:      RGB{2, 2, 2},
			FaintBg:       RGB{32, 32, 32},
			TextPrimary:   RGB{204, 204, 204},
			TextSecondary: RGB{153, 153, 153},
			TextDisabled:  RGB{102, 102, 102},
			ButtonBg:      RGB{48, 48, 48},
			ButtonHover:   RGB{64, 64, 64},
			ButtonActive:  RGB{80, 80, 80},
			Selection:     RGB{96, 96, 96},
			Separator:     RGB{48, 48, 48},
		},
		Spacing:    defaultSpacing,
		Typography: defaultTypography,
		Syntax:     darkSyntax,
	}
}

var darkSyntax = Syntax{
	Text:            RGB{204, 204, 204},
	Keyword:         RGB{168, 85, 247},
	Literal:         RGB{186, 85, 211},
	String:          RGB{218, 112, 214},
	Punctuation:     RGB{212, 212, 212},
	Preprocessor:    RGB{147, 112, 219},
	FormatSpecifier: RGB{199, 21, 133},
	Types:           RGB{129, 140, 248},
	Variables:       RGB{248, 174, 76},
}

// Light returns the built-in light theme.
func Light() Theme {
	return Theme{
		Name: LightName,
		Colors: Colors{
			WindowBg:      RGB{248, 249, 250},
			PanelBg:       RGB{255, 255, 255},
			EditorBg:      RGB{252, 253, 254},
			FaintBg:       RGB{240, 242, 245},
			TextPrimary:   RGB{33, 37, 41},
			TextSecondary: RGB{73, 80, 87},
			TextDisabled:  RGB{134, 142, 150},
			ButtonBg:      RGB{233, 236, 239},
			ButtonHover:   RGB{222, 226, 230},
			ButtonActive:  RGB{201, 203, 207},
			Selection:     RGB{13, 110, 253},
			Separator:     RGB{222, 226, 230},
		},
		Spacing:    defaultSpacing,
		Typography: defaultTypography,
		Syntax: Syntax{
			Text:            RGB{33, 37, 41},
			Keyword:         RGB{147, 51, 234},
			Literal:         RGB{9, 134, 88},
			String:          RGB{163, 21, 21},
			Punctuation:     RGB{0, 0, 0},
			Preprocessor:    RGB{128, 128, 128},
			FormatSpecifier: RGB{148, 148, 148},
			Types:           RGB{37, 99, 235},
			Variables:       RGB{217, 119, 6},
		},
	}
}

// Builtins returns the themes that are always available, Dark first.
func Builtins() []Theme {
	return []Theme{Dark(), Light()}
}
