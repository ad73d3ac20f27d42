package social

import "strings"

const (
	DefaultIcon  = "ExternalLink"
	DefaultColor = "from-gray-500 to-gray-600"
)

var icons = map[string]string{
	"instagram": "Instagram",
	"tiktok":    "Music",
	"youtube":   "Youtube",
	"github":    "Github",
	"twitter":   "Twitter",
	"facebook":  "Facebook",
	"linkedin":  "Linkedin",
}

var colors = map[string]string{
	"instagram": "from-pink-500 to-purple-600",
	"tiktok":    "from-black to-gray-800",
	"youtube":   "from-red-500 to-red-600",
	"github":    "from-gray-800 to-black",
	"twitter":   "from-blue-400 to-blue-600",
	"facebook":  "from-blue-600 to-blue-700",
	"linkedin":  "from-blue-700 to-blue-800",
}

// Icon returns the icon name for a platform, or DefaultIcon.
func Icon(platform string) string {
	if v, ok := icons[strings.ToLower(platform)]; ok {
		return v
	}
	return DefaultIcon
}

// Color returns the gradient classes for a platform, or DefaultColor.
func Color(platform string) string {
	if v, ok := colors[strings.ToLower(platform)]; ok {
		return v
	}
	return DefaultColor
}

// Link is a social profile shown in the hero section.
type Link struct {
	Platform string `json:"platform" yaml:"platform"`
	Label    string `json:"label" yaml:"label"`
	URL      string `json:"url" yaml:"url"`
}

// Decorated is a Link with its resolved icon and gradient.
type Decorated struct {
	Link
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func Decorate(l Link) Decorated {
	return Decorated{Link: l, Icon: Icon(l.Platform), Color: Color(l.Platform)}
}
