package main

// ActionDefinition defines an action with its command, default keybindings, mouse bindings, and help label
type ActionDefinition struct {
	Command      Command
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions lists every bindable action in help panel order
var actionDefinitions = []ActionDefinition{
	{CommandNext, "next", []string{"Space"}, []string{"LeftClick"}, "next page:"},
	{CommandPrev, "previous", []string{"KeyB"}, []string{"RightClick"}, "previous page:"},
	{CommandSwapOddEven, "swap_odd_even", []string{"KeyV"}, []string{}, "swap odd page:"},
	{CommandToggleDirection, "toggle_direction", []string{"KeyJ"}, []string{}, "swap read direction:"},
	{CommandToggleFullscreen, "fullscreen", []string{"KeyF"}, []string{}, "full screen toggle:"},
	{CommandGoToPage, "go_to_page", []string{"KeyG"}, []string{}, "go to page:"},
	{CommandToggleStatusBar, "toggle_status_bar", []string{"KeyS"}, []string{}, "toggle status bar:"},
	{CommandExit, "exit", []string{"Escape"}, []string{}, "exit:"},
	{CommandHelp, "help", []string{"KeyH"}, []string{}, "help:"},
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = append([]string(nil), action.Keys...)
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = append([]string(nil), action.MouseActions...)
	}
	return mousebindings
}

// commandForAction maps a config action name to its command
func commandForAction(name string) (Command, bool) {
	for _, action := range actionDefinitions {
		if action.Name == name {
			return action.Command, true
		}
	}
	return CommandNone, false
}

// actionForCommand returns the definition behind cmd
func actionForCommand(cmd Command) (ActionDefinition, bool) {
	for _, action := range actionDefinitions {
		if action.Command == cmd {
			return action, true
		}
	}
	return ActionDefinition{}, false
}
