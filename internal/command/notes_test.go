package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kokistudios/memomind/internal/note"
)

func noteTexts(p *note.Pad) []string {
	var out []string
	for _, n := range p.Notes() {
		out = append(out, n.Text())
	}
	return out
}

func TestAddNote(t *testing.T) {
	env, _ := newEnv(t)

	assert.Equal(t, "Note added", run(env, "add note buy milk #shop #home"))
	require.Equal(t, 1, env.Pad.Len())
	n := env.Pad.Notes()[0]
	assert.Equal(t, "buy milk", n.Text())
	assert.Equal(t, 2, n.TagCount())
	assert.Equal(t, 15, n.Day().Day())

	assert.Equal(t, "Invalid input: enter the note text", run(env, "add note"))
	assert.Equal(t, "Invalid input: enter the note text", run(env, "add note #only"))
}

func TestAddTag(t *testing.T) {
	env, _ := newEnv(t)
	run(env, "add note call mom")
	run(env, "add note buy milk")

	assert.Equal(t, `Tag "#shop" added to record "buy milk"`, run(env, "add tag buy... #shop"))
	assert.Equal(t, []string{"buy milk", "call mom"}, noteTexts(env.Pad))

	assert.Equal(t, "Already exists: The note already has these tags", run(env, "add tag buy #shop"))
	assert.Equal(t, "Invalid input: enter a non-empty #tag", run(env, "add tag buy"))
	assert.Equal(t, `Not found: Record "nothing" not found`, run(env, "add tag nothing #x"))
}

func TestChooser_Pages(t *testing.T) {
	env, fio := newEnv(t, "next", "1")
	env.Store.Config.Page = 2
	for _, text := range []string{"buy milk", "buy bread", "buy eggs"} {
		run(env, "add note "+text)
	}

	assert.Equal(t, `Tag "#shop" added to record "buy eggs"`, run(env, "add tag buy #shop"))
	assert.Equal(t, []string{
		"Notes 1-2:", "1. buy milk", "2. buy bread", `"next" for continue`, "0. Exit",
		"Notes 3-3:", "1. buy eggs", "0. Exit",
	}, fio.said)
	assert.Equal(t, []string{"Enter your choice: ", "Enter your choice: "}, fio.asked)
}

func TestChooser_CancelAndInvalid(t *testing.T) {
	env, fio := newEnv(t)
	env.Store.Config.Page = 2
	for _, text := range []string{"buy milk", "buy bread", "buy eggs"} {
		run(env, "add note "+text)
	}

	fio.answers = []string{"0"}
	assert.Equal(t, "Not found: Nothing selected", run(env, "del note buy"))
	assert.Equal(t, 3, env.Pad.Len())

	fio.answers = []string{"3"}
	assert.Equal(t, `Invalid input: Enter a positive index, got "3"`, run(env, "del note buy"))

	fio.answers = []string{"next", "next"}
	assert.Equal(t, `Invalid input: Enter a positive index, got "next"`, run(env, "del note buy"))

	fio.answers = []string{"2"}
	assert.Equal(t, `"buy bread" deleted successfully`, run(env, "del note buy"))
	assert.Equal(t, []string{"buy milk", "buy eggs"}, noteTexts(env.Pad))
}

func TestChangeNote(t *testing.T) {
	env, _ := newEnv(t)
	run(env, "add note buy milk")
	run(env, "add note send parcel #post")

	assert.Equal(t, `Note changed to "buy bread and milk"`, run(env, "change note buy... buy bread and milk"))
	assert.Equal(t, `Note changed to "pick up parcel"`, run(env, "change note #post pick up parcel"))
	assert.ElementsMatch(t, []string{"buy bread and milk", "pick up parcel"}, noteTexts(env.Pad))

	assert.Equal(t, "Check the correctness of data inputs: usage: change note <fragment>... <new text> | change note #tag <new text>",
		run(env, "change note buy bread"))
	assert.Equal(t, "Invalid input: enter the note text", run(env, "change note #post"))
	assert.Equal(t, `Not found: Record "walk" not found`, run(env, "change note walk... run"))
}

func TestChangeStatus(t *testing.T) {
	env, _ := newEnv(t)
	run(env, "add note call mom #family")
	run(env, "add note buy milk")

	assert.Equal(t, `The status of call mom has been changed to "done"`, run(env, "change status call"))
	assert.True(t, env.Pad.Notes()[0].Done())
	assert.Equal(t, `Already exists: Note "call mom" is already done`, run(env, "change status #fam"))

	assert.Equal(t, `The status of buy milk has been changed to "done"`, run(env, "change status buy..."))
	assert.Contains(t, run(env, "show notes"), "done. Date done 15.10.2026")
}

func TestDeleteNote(t *testing.T) {
	env, _ := newEnv(t)
	run(env, "add note call mom #family")
	run(env, "add note buy milk")

	assert.Equal(t, `"call mom" deleted successfully`, run(env, "del note #family"))
	assert.Equal(t, []string{"buy milk"}, noteTexts(env.Pad))
	assert.Equal(t, `Not found: Record "#family" not found`, run(env, "del note #family"))
}

func TestSearchNotes(t *testing.T) {
	env, _ := newEnv(t)
	run(env, "add note buy milk #shop")
	run(env, "add note buy bread #Shop")
	run(env, "add note call mom")

	assert.Equal(t, "Found notes for buy\nbuy milk, buy bread", run(env, "search note buy..."))
	assert.Equal(t, "Found notes for #SHOP\nbuy milk, buy bread", run(env, "search note #SHOP"))
	assert.Equal(t, "Record not found", run(env, "search note walk"))
	assert.True(t, strings.HasPrefix(run(env, "search note"), "Check the correctness of data inputs: usage:"))
}

func TestShowNotes(t *testing.T) {
	env, _ := newEnv(t)
	assert.Equal(t, "list of notes\nend of list of notes", run(env, "show notes"))

	run(env, "add note call mom #family")
	lines := strings.Split(run(env, "show notes"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "#family creation date: 15-10-2026. Content: call mom. Status: not done", lines[1])
}
