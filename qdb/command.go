package qdb

import (
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
)

// Command is one reversible change of a MemQDB table.
type Command interface {
	Do()
	Undo()
	// Target names the changed record, e.g. "entity_groups/eg1".
	Target() string
}

// putCommand sets or removes key of a table and restores the previous
// state on undo.
type putCommand[T any] struct {
	table  string
	m      map[string]T
	key    string
	value  T
	remove bool

	prev    T
	present bool
}

func newPutCommand[T any](table string, m map[string]T, key string, value T) *putCommand[T] {
	return &putCommand[T]{table: table, m: m, key: key, value: value}
}

func newDeleteCommand[T any](table string, m map[string]T, key string) *putCommand[T] {
	return &putCommand[T]{table: table, m: m, key: key, remove: true}
}

func (c *putCommand[T]) Do() {
	c.prev, c.present = c.m[c.key]
	if c.remove {
		delete(c.m, c.key)
		return
	}
	c.m[c.key] = c.value
}

func (c *putCommand[T]) Undo() {
	if c.present {
		c.m[c.key] = c.prev
		return
	}
	delete(c.m, c.key)
}

func (c *putCommand[T]) Target() string {
	return c.table + "/" + c.key
}

func targets(commands []Command) []string {
	ret := make([]string, 0, len(commands))
	for _, c := range commands {
		ret = append(ret, c.Target())
	}
	return ret
}

// executeCommands applies commands and persists the result with saver. If
// saving fails every change is reverted, so the tables never diverge from
// the last successful dump.
func executeCommands(op string, saver func() error, commands ...Command) error {
	for _, c := range commands {
		c.Do()
	}
	err := saver()
	if err == nil {
		return nil
	}

	egkvlog.Zero.Error().
		Err(err).
		Str("op", op).
		Strs("records", targets(commands)).
		Msg("memqdb: failed to persist state, undo commands")
	for i := len(commands) - 1; i >= 0; i-- {
		commands[i].Undo()
	}
	return egerror.Newf(egerror.EGKV_UNEXPECTED, "memqdb: %s: %s", op, err.Error())
}
