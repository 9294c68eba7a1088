package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
)

func stubID(t *testing.T, ids []int64) {
	t.Helper()
	orig := getID
	i := 0
	getID = func(_ *bufio.Reader, _ string, _ io.Writer) (int64, error) {
		id := ids[i%len(ids)]
		i++
		return id, nil
	}
	t.Cleanup(func() { getID = orig })
}

func TestEvents(t *testing.T) {
	out := capturePrintln(t)

	conf := &fakeConfService{events: []api.Event{
		{ID: 1, Title: "GopherCon", Venue: "Berlin"},
		{ID: 2, Title: "SysConf", Venue: "Riga"},
	}}
	a := &App{confService: conf, logger: testLogger()}

	if err := a.Events(context.Background()); err != nil {
		t.Fatalf("Events err: %v", err)
	}
	if !strings.Contains(out(), "GopherCon") || !strings.Contains(out(), "SysConf") {
		t.Fatalf("events not printed: %q", out())
	}
}

func TestEvents_Empty(t *testing.T) {
	out := capturePrintln(t)

	a := &App{confService: &fakeConfService{}, logger: testLogger()}

	if err := a.Events(context.Background()); err != nil {
		t.Fatalf("Events err: %v", err)
	}
	if !strings.Contains(out(), "No events") {
		t.Fatalf("unexpected output: %q", out())
	}
}

func TestAttend(t *testing.T) {
	capturePrintln(t)
	stubID(t, []int64{7})

	conf := &fakeConfService{}
	a := &App{confService: conf, logger: testLogger()}

	if err := a.Attend(context.Background()); err != nil {
		t.Fatalf("Attend err: %v", err)
	}
	if conf.attendID != 7 {
		t.Fatalf("Attend id mismatch: %d", conf.attendID)
	}
}

func TestSubmissions(t *testing.T) {
	out := capturePrintln(t)

	conf := &fakeConfService{submissions: []api.Submission{
		{ID: 3, EventID: 1, Title: "On Token Refresh", Status: "submitted"},
	}}
	a := &App{confService: conf, logger: testLogger()}

	if err := a.Submissions(context.Background()); err != nil {
		t.Fatalf("Submissions err: %v", err)
	}
	if !strings.Contains(out(), "On Token Refresh") {
		t.Fatalf("submissions not printed: %q", out())
	}
}

func TestSubmit(t *testing.T) {
	out := capturePrintln(t)
	stubID(t, []int64{1})
	stubInputs(t, []string{"On Token Refresh", "auth, jwt"}, nil)

	conf := &fakeConfService{submitResult: api.Submission{ID: 9, Title: "On Token Refresh", Status: "submitted"}}
	a := &App{
		confService: conf,
		logger:      testLogger(),
		reader:      bufio.NewReader(strings.NewReader("A study of silent session recovery.\n\n")),
	}

	if err := a.Submit(context.Background()); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	want := api.PaperSubmission{
		EventID:  1,
		Title:    "On Token Refresh",
		Abstract: "A study of silent session recovery.",
		Keywords: "auth, jwt",
	}
	if conf.lastPaper != want {
		t.Fatalf("paper mismatch:\ngot  %+v\nwant %+v", conf.lastPaper, want)
	}
	if !strings.Contains(out(), "Submitted paper [9]") {
		t.Fatalf("confirmation not printed: %q", out())
	}
}

func TestAssign(t *testing.T) {
	out := capturePrintln(t)
	stubID(t, []int64{5, 9})

	conf := &fakeConfService{}
	a := &App{confService: conf, logger: testLogger()}

	if err := a.Assign(context.Background()); err != nil {
		t.Fatalf("Assign err: %v", err)
	}
	if conf.assignSubmissionID != 5 || conf.assignReviewerID != 9 {
		t.Fatalf("Assign ids mismatch: %d %d", conf.assignSubmissionID, conf.assignReviewerID)
	}
	if !strings.Contains(out(), "Reviewer 9 assigned to submission 5") {
		t.Fatalf("confirmation not printed: %q", out())
	}
}
