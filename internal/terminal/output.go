package terminal

import "strings"

// BlockKind tells a renderer how to present a Block.
type BlockKind string

const (
	BlockHeading BlockKind = "heading"
	BlockText    BlockKind = "text"
	// BlockMuted is secondary text such as periods and technology lists.
	BlockMuted  BlockKind = "muted"
	BlockList   BlockKind = "list"
	BlockLink   BlockKind = "link"
	BlockArt    BlockKind = "art"
	BlockNotice BlockKind = "notice"
)

// Item is one row of a list block.
type Item struct {
	Label string `json:"label"`
	Text  string `json:"text,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Block is one renderable piece of an Output.
type Block struct {
	Kind   BlockKind `json:"kind"`
	Text   string    `json:"text,omitempty"`
	URL    string    `json:"url,omitempty"`
	Items  []Item    `json:"items,omitempty"`
	Notice *Notice   `json:"notice,omitempty"`
}

// Output is the result of interpreting one line.
type Output struct {
	Command string  `json:"command,omitempty"`
	Blocks  []Block `json:"blocks"`
	// Clear asks the caller to wipe its history.
	Clear bool `json:"clear,omitempty"`
	// Suggestion is set when an unknown command was close to a known one.
	Suggestion string `json:"suggestion,omitempty"`
}

// Empty reports whether there is nothing to show or do.
func (o Output) Empty() bool {
	return len(o.Blocks) == 0 && !o.Clear
}

// Notices returns every notice carried by the output.
func (o Output) Notices() []Notice {
	var out []Notice
	for _, b := range o.Blocks {
		if b.Notice != nil {
			out = append(out, *b.Notice)
		}
	}
	return out
}

// PlainText renders the output without styling, one block per paragraph.
func (o Output) PlainText() string {
	var sb strings.Builder
	for i, b := range o.Blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch b.Kind {
		case BlockList:
			for _, it := range b.Items {
				sb.WriteString(it.Label)
				if it.Text != "" {
					sb.WriteString(" - " + it.Text)
				}
				if it.URL != "" {
					sb.WriteString(" <" + it.URL + ">")
				}
				sb.WriteString("\n")
			}
		case BlockLink:
			sb.WriteString(b.Text + ": " + b.URL + "\n")
		case BlockNotice:
			sb.WriteString(b.Notice.Title + ": " + b.Notice.Description + "\n")
		default:
			sb.WriteString(b.Text + "\n")
		}
	}
	return sb.String()
}

func heading(text string) Block { return Block{Kind: BlockHeading, Text: text} }
func text(s string) Block       { return Block{Kind: BlockText, Text: s} }
func muted(s string) Block      { return Block{Kind: BlockMuted, Text: s} }
func art(s string) Block        { return Block{Kind: BlockArt, Text: s} }

func link(label, url string) Block {
	return Block{Kind: BlockLink, Text: label, URL: url}
}

func list(items ...Item) Block {
	return Block{Kind: BlockList, Items: items}
}

func noticeBlock(n Notice) Block {
	return Block{Kind: BlockNotice, Notice: &n}
}

// reply builds a single-paragraph output.
func reply(cmd, msg string) Output {
	return Output{Command: cmd, Blocks: []Block{text(msg)}}
}
