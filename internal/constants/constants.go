package constants

// IconSizes are the square PNG sizes written to the icons directory.
var IconSizes = []int{
	72,
	96,
	128,
	144,
	152,
	192,
	384,
	512,
}

const (
	FaviconSize   = 32
	TouchIconSize = 180

	// MaxOutputs counts every size plus the favicon and the touch icon.
	MaxOutputs = 10
)

const (
	PublicDir       = "app/public"
	IconsDir        = "icons"
	SourceFile      = "icon.svg"
	FaviconFile     = "favicon.ico"
	FaviconTempFile = "favicon-temp.png"
	TouchIconFile   = "apple-touch-icon.png"
)
