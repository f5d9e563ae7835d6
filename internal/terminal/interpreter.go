package terminal

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alexanderramin/devterm/internal/intelligence"
	"github.com/alexanderramin/devterm/internal/portfolio"
)

// Interpreter turns input lines into Outputs. It is safe for concurrent use
// as long as its Source and Flows are.
type Interpreter struct {
	source portfolio.Source
	flows  *intelligence.Flows
	logger *zap.Logger
}

// NewInterpreter builds an Interpreter. A nil logger is replaced by a no-op.
func NewInterpreter(source portfolio.Source, flows *intelligence.Flows, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{source: source, flows: flows, logger: logger.Named("terminal")}
}

// Interpret runs one line to completion. AI failures become notice blocks;
// the raw error is only logged.
func (in *Interpreter) Interpret(ctx context.Context, input string) Output {
	line := ParseLine(input)
	if line.Command == "" {
		return Output{}
	}

	cmd, ok := Lookup(line.Command)
	if !ok {
		return unknownCommand(line.Command)
	}

	if cmd.ID == CmdClear {
		return Output{Command: cmd.Name, Clear: true}
	}

	var snap *portfolio.Snapshot
	if readsPortfolio(cmd.ID) {
		var err error
		snap, err = in.source.Snapshot(ctx)
		if err != nil {
			in.logger.Error("loading portfolio", zap.String("command", cmd.Name), zap.Error(err))
			return reply(cmd.Name, "Portfolio content is unavailable right now. Please try again later.")
		}
	}

	out := in.dispatch(ctx, cmd.ID, line, snap)
	out.Command = cmd.Name
	return out
}

// readsPortfolio reports whether the handler for id renders snapshot content.
// suggest loads its own through the flow.
func readsPortfolio(id CommandID) bool {
	switch id {
	case CmdHelp, CmdSuggest, CmdCoffee, CmdCat, CmdClear:
		return false
	}
	return true
}

func (in *Interpreter) dispatch(ctx context.Context, id CommandID, line Line, snap *portfolio.Snapshot) Output {
	switch id {
	case CmdHelp:
		return help()
	case CmdAboutMe:
		return aboutMe(snap)
	case CmdSkills:
		return in.skills(ctx, snap)
	case CmdSkill:
		return skill(line, snap)
	case CmdProjects:
		return projects(snap)
	case CmdProject:
		return in.project(ctx, line, snap)
	case CmdExperience:
		return experience(snap)
	case CmdEducation:
		return education(snap)
	case CmdResume:
		return resume(snap)
	case CmdContact:
		return contact(snap)
	case CmdAsk:
		return in.ask(ctx, line, snap)
	case CmdSuggest:
		return in.suggest(ctx)
	case CmdCoffee:
		return Output{Blocks: []Block{art(coffeeArt), text("Coffee deployed. Productivity up 200%.")}}
	case CmdCat:
		return Output{Blocks: []Block{art(catArt), text("Meow. The cat approves of your command.")}}
	case CmdClear:
		return Output{Clear: true}
	default:
		return unknownCommand(line.Command)
	}
}

func unknownCommand(name string) Output {
	if s := ClosestCommand(name); s != "" {
		return Output{
			Blocks:     []Block{text(fmt.Sprintf("Command not found: %s. Did you mean: %s?", name, s))},
			Suggestion: s,
		}
	}
	return Output{Blocks: []Block{text(fmt.Sprintf("Command not found: %s. Type 'help' for a list of commands.", name))}}
}

// failure logs err and renders its notice.
func (in *Interpreter) failure(cmd string, err error) Block {
	n := Classify(err)
	in.logger.Warn("ai command failed",
		zap.String("command", cmd),
		zap.String("notice", string(n.Kind)),
		zap.Error(err),
	)
	return noticeBlock(n)
}

func help() Output {
	items := make([]Item, 0, len(commandTable))
	for _, c := range commandTable {
		items = append(items, Item{Label: c.Usage, Text: c.Description})
	}
	return Output{Blocks: []Block{heading("Available commands"), list(items...)}}
}

func aboutMe(snap *portfolio.Snapshot) Output {
	var blocks []Block
	if title := ownerTitle(snap); title != "" {
		blocks = append(blocks, heading(title))
	}
	return Output{Blocks: append(blocks, text(snap.AboutMe))}
}

func ownerTitle(snap *portfolio.Snapshot) string {
	switch {
	case snap.Owner != "" && snap.Headline != "":
		return snap.Owner + " | " + snap.Headline
	case snap.Headline != "":
		return snap.Headline
	default:
		return snap.Owner
	}
}

func (in *Interpreter) skills(ctx context.Context, snap *portfolio.Snapshot) Output {
	var blocks []Block
	for _, cat := range snap.SkillCatalog {
		items := make([]Item, 0, len(cat.Skills))
		for _, sk := range cat.Skills {
			items = append(items, Item{Label: sk.Name, Text: sk.Level})
		}
		blocks = append(blocks, heading(cat.Name), list(items...))
	}
	if len(snap.SkillCatalog) == 0 && len(snap.Skills) > 0 {
		items := make([]Item, 0, len(snap.Skills))
		for _, s := range snap.Skills {
			items = append(items, Item{Label: s})
		}
		blocks = append(blocks, heading("Skills"), list(items...))
	}

	highlighted, err := in.flows.Skills.List(ctx, intelligence.SkillsListInput{})
	if err != nil {
		return Output{Blocks: append(blocks, in.failure("skills", err))}
	}
	items := make([]Item, 0, len(highlighted))
	for _, s := range highlighted {
		items = append(items, Item{Label: s})
	}
	return Output{Blocks: append(blocks, heading("Highlighted by AI"), list(items...))}
}

func skill(line Line, snap *portfolio.Snapshot) Output {
	if len(line.Args) == 0 {
		return reply("", "Please specify a skill name. Use 'skills' to see the catalogue.")
	}
	name := strings.Join(line.Args, " ")
	sk, category, ok := snap.FindSkill(name)
	if !ok {
		return reply("", fmt.Sprintf("Skill not found: %s. Try 'skills' to see the full catalogue.", name))
	}
	blocks := []Block{heading(sk.Name), muted(fmt.Sprintf("%s | %s", category, sk.Level))}
	if sk.Summary != "" {
		blocks = append(blocks, text(sk.Summary))
	}
	return Output{Blocks: blocks}
}

func projects(snap *portfolio.Snapshot) Output {
	items := make([]Item, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		items = append(items, Item{Label: p.Name, Text: p.Title})
	}
	return Output{Blocks: []Block{
		text("Here are my projects. Use 'project <name>' to see details."),
		list(items...),
	}}
}

func (in *Interpreter) project(ctx context.Context, line Line, snap *portfolio.Snapshot) Output {
	if len(line.Args) == 0 {
		return reply("", "Please specify a project name. Use 'projects' to see a list.")
	}
	name := line.Args[0]
	p, ok := snap.FindProject(name)
	if !ok {
		return reply("", fmt.Sprintf("Project not found: %s. Try 'projects' to see a list of available projects.", name))
	}

	desc, err := in.flows.ProjectDescription.Describe(ctx, intelligence.ProjectDescriptionInput{
		ProjectName:   p.Title,
		Technologies:  p.Technologies,
		BriefOverview: p.Description,
	})
	if err != nil {
		return Output{Blocks: []Block{in.failure("project", err)}}
	}

	blocks := []Block{heading(p.Title), muted(p.Technologies), text(desc.ProjectDescription)}
	if p.Link != "" {
		blocks = append(blocks, link("View on GitHub", p.Link))
	}
	return Output{Blocks: blocks}
}

func experience(snap *portfolio.Snapshot) Output {
	var blocks []Block
	for _, e := range snap.Experience {
		blocks = append(blocks, heading(e.Role+" @ "+e.Company), muted(e.Period), text(e.Description))
	}
	return Output{Blocks: blocks}
}

func education(snap *portfolio.Snapshot) Output {
	var blocks []Block
	for _, e := range snap.Education {
		blocks = append(blocks, heading(e.Degree), muted(e.Institution+" | "+e.Period))
		if e.Details != "" {
			blocks = append(blocks, text(e.Details))
		}
	}
	return Output{Blocks: blocks}
}

func resume(snap *portfolio.Snapshot) Output {
	var blocks []Block
	if title := ownerTitle(snap); title != "" {
		blocks = append(blocks, heading(title))
	}
	if snap.Resume.Summary != "" {
		blocks = append(blocks, text(snap.Resume.Summary))
	}
	if snap.Resume.URL != "" {
		blocks = append(blocks, link("Download resume", snap.Resume.URL))
	}
	return Output{Blocks: blocks}
}

func contact(snap *portfolio.Snapshot) Output {
	items := make([]Item, 0, len(snap.Contact))
	for _, c := range snap.Contact {
		items = append(items, Item{Label: c.Name, Text: c.Value, URL: c.Link})
	}
	return Output{Blocks: []Block{list(items...)}}
}

func (in *Interpreter) ask(ctx context.Context, line Line, snap *portfolio.Snapshot) Output {
	question, ok := quotedQuestion(line.RawArgs)
	if !ok {
		return reply("", `Please enclose your question in double quotes. Example: ask "What do you work on?"`)
	}

	out, err := in.flows.Ask.Answer(ctx, intelligence.AskInput{Question: question, Portfolio: snap.PromptContext()})
	if err != nil {
		return Output{Blocks: []Block{in.failure("ask", err)}}
	}
	return Output{Blocks: []Block{text(out.Answer)}}
}

func (in *Interpreter) suggest(ctx context.Context) Output {
	out, err := in.flows.PromptSuggestions.Suggest(ctx)
	if err != nil {
		return Output{Blocks: []Block{in.failure("suggest", err)}}
	}
	items := make([]Item, 0, len(out.Prompts))
	for _, p := range out.Prompts {
		items = append(items, Item{Label: p.Label, Text: `ask "` + p.Question + `"`})
	}
	return Output{Blocks: []Block{text("Try asking one of these:"), list(items...)}}
}
