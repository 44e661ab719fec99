package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Star)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(Black)
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Accent).Render("[ Save ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Save"))

	// Background is assumed to be the terminal background when blending faded content.
	Background = Black

	Black  = lipgloss.Color("#111111")
	Gray   = lipgloss.Color("#3e3e3e")
	White  = lipgloss.Color("#cccccc")
	Whiter = lipgloss.Color("#eeeeee")

	Red    = lipgloss.Color("#B8383B")
	Star   = lipgloss.Color("#ffd700")
	Nebula = lipgloss.Color("#8650ac")
	Sky    = lipgloss.Color("#5885A2")
	Leaf   = lipgloss.Color("#4d7455")
	Ember  = lipgloss.Color("#cf6a32")

	HeroTitle    = lipgloss.NewStyle().Bold(true).Foreground(Star).Align(lipgloss.Center)
	HeroSubtitle = lipgloss.NewStyle().Foreground(Sky).Align(lipgloss.Center)

	StoryHeading = lipgloss.NewStyle().Bold(true).Foreground(Nebula)
	StoryBody    = lipgloss.NewStyle().Foreground(White)

	PanelTab       = lipgloss.NewStyle().Foreground(Gray).PaddingLeft(1).PaddingRight(1)
	PanelTabActive = lipgloss.NewStyle().Foreground(Black).Background(Star).Bold(true).PaddingLeft(1).PaddingRight(1)

	CardBorder         = lipgloss.RoundedBorder()
	CardSelectedBorder = lipgloss.ThickBorder()

	SectionTitle = lipgloss.NewStyle().Bold(true).Foreground(Ember).PaddingTop(1).PaddingBottom(1)

	ListSelectedRow   = lipgloss.NewStyle().Padding(0).Bold(true).Foreground(Star).Inline(true)
	ListUnselectedRow = lipgloss.NewStyle().Padding(0).Bold(false).Foreground(White).Inline(true)
	ListTitle         = lipgloss.NewStyle().Foreground(Black).Background(Nebula).Padding(0, 1)

	RecentLabel = lipgloss.NewStyle().Foreground(Gray).Italic(true)
	RecentItem  = lipgloss.NewStyle().Foreground(Sky).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	DetailEmoji = lipgloss.NewStyle().Bold(true).Foreground(Star).PaddingRight(1)
	DetailName  = lipgloss.NewStyle().Bold(true).Foreground(Whiter)
	DetailBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Nebula).Padding(1, 2)

	StatusPage    = lipgloss.NewStyle().Foreground(Ember).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusPanel   = lipgloss.NewStyle().Foreground(Leaf).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Leaf).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(Leaf).Bold(true).Align(lipgloss.Center).PaddingRight(1)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconHistory = "🕘"
	IconMatch   = "💞"
	IconTraits  = "✨"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(width-lipgloss.Width(value), 0)

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
