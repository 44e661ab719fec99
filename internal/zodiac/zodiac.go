// Package zodiac holds the static sign tables shown by the browser.
package zodiac

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownSign = errors.New("unknown zodiac sign")

const (
	defaultMatch       = "與所有星座都有獨特的緣分 ✨"
	defaultPersonality = "每個星座都有獨特的魅力 ⭐"
)

type Sign struct {
	// Name is the traditional Chinese name.
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Emoji       string `json:"emoji"`
	// Dates is the month/day range, eg: 12/22-1/19.
	Dates string `json:"dates"`
}

// Slug is the lower case english name used in routes.
func (s Sign) Slug() string {
	return strings.ToLower(s.EnglishName)
}

func (s Sign) Title() string {
	return s.Emoji + " " + s.Name + " " + s.EnglishName
}

var signs = []Sign{
	{Name: "摩羯座", EnglishName: "Capricorn", Emoji: "♑", Dates: "12/22-1/19"},
	{Name: "水瓶座", EnglishName: "Aquarius", Emoji: "♒", Dates: "1/20-2/18"},
	{Name: "雙魚座", EnglishName: "Pisces", Emoji: "♓", Dates: "2/19-3/20"},
	{Name: "牡羊座", EnglishName: "Aries", Emoji: "♈", Dates: "3/21-4/19"},
	{Name: "金牛座", EnglishName: "Taurus", Emoji: "♉", Dates: "4/20-5/20"},
	{Name: "雙子座", EnglishName: "Gemini", Emoji: "♊", Dates: "5/21-6/21"},
	{Name: "巨蟹座", EnglishName: "Cancer", Emoji: "♋", Dates: "6/22-7/22"},
	{Name: "獅子座", EnglishName: "Leo", Emoji: "♌", Dates: "7/23-8/22"},
	{Name: "處女座", EnglishName: "Virgo", Emoji: "♍", Dates: "8/23-9/22"},
	{Name: "天秤座", EnglishName: "Libra", Emoji: "♎", Dates: "9/23-10/23"},
	{Name: "天蠍座", EnglishName: "Scorpio", Emoji: "♏", Dates: "10/24-11/21"},
	{Name: "射手座", EnglishName: "Sagittarius", Emoji: "♐", Dates: "11/22-12/21"},
}

var matches = map[string]string{
	"Capricorn":   "處女座 ♍ - 實務派的完美組合，彼此欣賞對方的責任感和細心",
	"Aquarius":    "雙子座 ♊ - 思想自由的靈魂伴侶，永遠有聊不完的話題",
	"Pisces":      "巨蟹座 ♋ - 溫柔體貼的情感連結，天生的心靈相通",
	"Aries":       "獅子座 ♌ - 火象星座的激情碰撞，充滿活力和冒險精神",
	"Taurus":      "摩羯座 ♑ - 穩定踏實的土象配對，共同打造安穩的未來",
	"Gemini":      "天秤座 ♎ - 風象星座的智慧對話，優雅而充滿趣味",
	"Cancer":      "天蠍座 ♏ - 水象星座的深度情感，彼此的心靈港灣",
	"Leo":         "射手座 ♐ - 火象星座的樂觀組合，一起探索世界的美好",
	"Virgo":       "金牛座 ♉ - 土象星座的完美主義，追求品質生活的夥伴",
	"Libra":       "水瓶座 ♒ - 風象星座的和諧平衡，理想主義的浪漫",
	"Scorpio":     "雙魚座 ♓ - 水象星座的神秘吸引，深刻而浪漫的愛情",
	"Sagittarius": "牡羊座 ♈ - 火象星座的自由靈魂，一起追逐夢想和冒險",
}

var personalities = map[string]string{
	"Capricorn":   "務實穩重，有強烈的責任感和事業心。喜歡有計劃的生活，是可靠的伴侶",
	"Aquarius":    "獨立創新，思想前衛。重視友情和精神交流，需要自由空間",
	"Pisces":      "敏感浪漫，富有同情心。直覺力強，容易受環境影響，需要理解和包容",
	"Aries":       "積極主動，充滿活力。喜歡挑戰和競爭，有時略顯急躁但很有魅力",
	"Taurus":      "穩定實際，追求安全感。喜歡美好事物，固執但忠誠可靠",
	"Gemini":      "聰明機智，適應力強。好奇心旺盛，善於溝通但有時缺乏深度",
	"Cancer":      "溫柔體貼，家庭觀念重。情感豐富，保護慾強，是天生的照顧者",
	"Leo":         "自信大方，天生的領導者。喜歡被讚美和關注，慷慨而有魅力",
	"Virgo":       "細心謹慎，追求完美。分析能力強，有時過於挑剔但很可靠",
	"Libra":       "優雅和諧，追求平衡。社交能力強，猶豫不決但很有魅力",
	"Scorpio":     "神秘深沉，情感強烈。洞察力強，佔有慾強但很專一",
	"Sagittarius": "樂觀自由，熱愛冒險。哲學思維，直率坦誠，需要自由空間",
}

// Lookup is the read-only view of the sign tables that the rest of the app depends on.
type Lookup interface {
	All() []Sign
	Find(englishName string) (Sign, error)
	Index(englishName string) int
	BestMatch(englishName string) string
	Personality(englishName string) string
}

// Catalog is the default Lookup backed by the built-in tables.
type Catalog struct {
	signs         []Sign
	matches       map[string]string
	personalities map[string]string
}

func New() Catalog {
	return Catalog{signs: signs, matches: matches, personalities: personalities}
}

// All returns a copy of every sign in calendar order starting with Capricorn.
func (c Catalog) All() []Sign {
	return slices.Clone(c.signs)
}

// Find looks up a sign by its english name, ignoring case and surrounding space.
func (c Catalog) Find(englishName string) (Sign, error) {
	index := c.Index(englishName)
	if index < 0 {
		return Sign{}, errors.Join(fmt.Errorf("sign %q", englishName), ErrUnknownSign)
	}

	return c.signs[index], nil
}

// Index returns the position of the sign in All, or -1.
func (c Catalog) Index(englishName string) int {
	name := strings.TrimSpace(englishName)

	return slices.IndexFunc(c.signs, func(sign Sign) bool {
		return strings.EqualFold(sign.EnglishName, name)
	})
}

// BestMatch returns the compatible sign description, falling back to a generic message.
func (c Catalog) BestMatch(englishName string) string {
	if match, found := c.matches[englishName]; found && match != "" {
		return match
	}

	return defaultMatch
}

// Personality returns the personality blurb, falling back to a generic message.
func (c Catalog) Personality(englishName string) string {
	if personality, found := c.personalities[englishName]; found && personality != "" {
		return personality
	}

	return defaultPersonality
}
