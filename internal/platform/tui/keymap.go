package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type actionKey struct {
	action  core.Action
	binding key.Binding
}

type menuKey struct {
	action  MenuAction
	binding key.Binding
}

// KeyMapper turns key presses into game actions and menu actions. The
// first binding that matches wins.
type KeyMapper struct {
	game []actionKey
	menu []menuKey
}

// NewKeyMapper returns the default runner controls.
func NewKeyMapper() *KeyMapper {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	return &KeyMapper{
		game: []actionKey{
			{core.ActionQuit, bind("quit", "q", "ctrl+c")},
			{core.ActionJump, bind("jump", " ", "w", "up")},
			{core.ActionSlide, bind("slide", "s", "down")},
			{core.ActionPause, bind("pause", "p", "esc")},
			{core.ActionDifficulty, bind("hard mode", "h")},
			{core.ActionRestart, bind("restart", "r")},
			{core.ActionSpecial, bind("special", "f")},
			{core.ActionConfirm, bind("start", "enter")},
			{core.ActionBack, bind("back", "b")},
		},
		menu: []menuKey{
			{MenuActionQuit, bind("quit", "q", "ctrl+c")},
			{MenuActionUp, bind("up", "up", "w", "k")},
			{MenuActionDown, bind("down", "down", "s", "j")},
			{MenuActionSelect, bind("play", "enter", " ")},
			{MenuActionScoreboard, bind("history", "tab")},
			{MenuActionBack, bind("back", "esc", "b")},
		},
	}
}

// MapKey returns the game action for msg and whether it quits.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, k := range km.game {
		if key.Matches(msg, k.binding) {
			return k.action, k.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapMouse fires the special on a left click press.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		return core.ActionSpecial
	}
	return core.ActionNone
}

// Holdable reports whether an action is tracked as held until released.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionJump, core.ActionSlide:
		return true
	}
	return false
}

// MenuAction is an input on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, k := range km.menu {
		if key.Matches(msg, k.binding) {
			return k.action
		}
	}
	return MenuActionNone
}
