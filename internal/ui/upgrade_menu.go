package ui

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-shooter/internal/config"
)

const (
	cardWidth   = 220
	cardHeight  = 160
	cardSpacing = 30
)

// UpgradeCard is one entry of the menu as the front-end sees it.
type UpgradeCard struct {
	Name        string
	Description string
}

// UpgradeMenu lays the offered upgrades out as a row of cards.
type UpgradeMenu struct {
	Cards []*Button
	face  font.Face
}

func NewUpgradeMenu(face font.Face) *UpgradeMenu {
	return &UpgradeMenu{face: face}
}

// SetCards rebuilds the row, centred on the screen.
func (m *UpgradeMenu) SetCards(cards []UpgradeCard) {
	m.Cards = m.Cards[:0]
	total := len(cards)*cardWidth + (len(cards)-1)*cardSpacing
	x := (config.ScreenWidth - total) / 2
	y := (config.ScreenHeight - cardHeight) / 2
	for i, c := range cards {
		rect := image.Rect(x, y, x+cardWidth, y+cardHeight)
		b := NewButton(rect, c.Name, m.face)
		b.Body = c.Description
		b.Hotkey = strconv.Itoa(i + 1)
		m.Cards = append(m.Cards, b)
		x += cardWidth + cardSpacing
	}
}

// CardAt returns the index of the card under x, y, or -1.
func (m *UpgradeMenu) CardAt(x, y int) int {
	for i, b := range m.Cards {
		if b.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (m *UpgradeMenu) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)
	drawOutlined(screen, "CHOOSE AN UPGRADE", m.face, config.ScreenWidth/2, (config.ScreenHeight-cardHeight)/2-40, 1, config.PlayerColor, config.BackgroundColor)
	for _, b := range m.Cards {
		b.Draw(screen, cursorX, cursorY)
	}
}
