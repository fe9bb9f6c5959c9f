package repositories

import "context"

// BlockSeparator opens and closes every block written by AppendBlock.
const BlockSeparator = "-----------------------------"

// Store describes the persistence operations the services rely on.
type Store interface {
	// Exists reports whether an entry is stored for key. Any failure to
	// check is reported as absent.
	Exists(ctx context.Context, key string) bool

	// ReadFirstLine returns the first line stored for key without its
	// line terminator. ok is false when the entry is missing or unreadable.
	ReadFirstLine(ctx context.Context, key string) (line string, ok bool)

	// ReadAllLines returns every stored line in order. A missing entry
	// yields an empty slice and no error.
	ReadAllLines(ctx context.Context, key string) ([]string, error)

	// WriteCreate stores content followed by a newline as the only content
	// for key, replacing whatever was there.
	WriteCreate(ctx context.Context, key, content string) error

	// AppendBlock appends lines wrapped in BlockSeparator lines, followed
	// by a blank line, creating the entry if needed.
	AppendBlock(ctx context.Context, key string, lines []string) error
}

// Block returns the exact lines AppendBlock persists for lines.
func Block(lines []string) []string {
	block := make([]string, 0, len(lines)+3)
	block = append(block, BlockSeparator)
	block = append(block, lines...)
	block = append(block, BlockSeparator, "")
	return block
}
