// Package terminal interprets one line of visitor input and produces a
// renderer-neutral Output.
package terminal

import "strings"

// CommandID identifies a known command. Dispatch switches on it.
type CommandID int

const (
	CmdUnknown CommandID = iota
	CmdHelp
	CmdAboutMe
	CmdSkills
	CmdSkill
	CmdProjects
	CmdProject
	CmdExperience
	CmdEducation
	CmdResume
	CmdContact
	CmdAsk
	CmdSuggest
	CmdCoffee
	CmdCat
	CmdClear
)

// Command is one entry of the command table.
type Command struct {
	ID          CommandID `json:"-"`
	Name        string    `json:"name"`
	Usage       string    `json:"usage"`
	Description string    `json:"description"`
	// AI marks commands that call a generative flow.
	AI bool `json:"ai"`
}

// commandTable is ordered: help output, completion and suggestion ties all
// follow it.
var commandTable = []Command{
	{ID: CmdHelp, Name: "help", Usage: "help", Description: "Show this help message"},
	{ID: CmdAboutMe, Name: "aboutme", Usage: "aboutme", Description: "Learn a little about me"},
	{ID: CmdSkills, Name: "skills", Usage: "skills", Description: "List my skills by category", AI: true},
	{ID: CmdSkill, Name: "skill", Usage: "skill <name>", Description: "Show details for one skill"},
	{ID: CmdProjects, Name: "projects", Usage: "projects", Description: "List my projects"},
	{ID: CmdProject, Name: "project", Usage: "project <name>", Description: "Show details for one project", AI: true},
	{ID: CmdExperience, Name: "experience", Usage: "experience", Description: "Show my work experience"},
	{ID: CmdEducation, Name: "education", Usage: "education", Description: "Show my education history"},
	{ID: CmdResume, Name: "resume", Usage: "resume", Description: "Show a resume summary and download link"},
	{ID: CmdContact, Name: "contact", Usage: "contact", Description: "Show ways to get in touch"},
	{ID: CmdAsk, Name: "ask", Usage: `ask "<question>"`, Description: "Ask the AI assistant about me", AI: true},
	{ID: CmdSuggest, Name: "suggest", Usage: "suggest", Description: "Suggest questions worth asking", AI: true},
	{ID: CmdCoffee, Name: "coffee", Usage: "coffee", Description: "Brew a fresh cup"},
	{ID: CmdCat, Name: "cat", Usage: "cat", Description: "Say hello to the cat"},
	{ID: CmdClear, Name: "clear", Usage: "clear", Description: "Clear the terminal"},
}

// Commands returns a copy of the command table in display order.
func Commands() []Command {
	return append([]Command(nil), commandTable...)
}

// CommandNames returns every command name in table order.
func CommandNames() []string {
	names := make([]string, len(commandTable))
	for i, c := range commandTable {
		names[i] = c.Name
	}
	return names
}

// Lookup resolves a command name, ignoring case.
func Lookup(name string) (Command, bool) {
	name = strings.ToLower(name)
	for _, c := range commandTable {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}
