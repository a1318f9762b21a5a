package domain

import "testing"

func testPlayable(id string) Playable {
	return Playable{
		Source: SourceYouTube,
		ID:     id,
		Title:  "track " + id,
		URI:    "https://www.youtube.com/watch?v=" + id,
	}
}

func TestQueue_Replace(t *testing.T) {
	q := NewQueue()
	q.Replace(Batch{testPlayable("a"), testPlayable("b"), testPlayable("c")})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}
	if current := q.Current(); current == nil || current.ID != "a" {
		t.Errorf("Current() = %v, want playable a", current)
	}
}

func TestQueue_ReplaceResetsCursor(t *testing.T) {
	q := NewQueue()
	q.Replace(Batch{testPlayable("a"), testPlayable("b")})
	q.Advance()

	q.Replace(Batch{testPlayable("x"), testPlayable("y")})

	if current := q.Current(); current == nil || current.ID != "x" {
		t.Errorf("Current() after replace = %v, want playable x", current)
	}
}

func TestQueue_ReplaceCopiesBatch(t *testing.T) {
	batch := Batch{testPlayable("a")}
	q := NewQueue()
	q.Replace(batch)

	batch[0].ID = "mutated"

	if current := q.Current(); current.ID != "a" {
		t.Errorf("Current().ID = %q, want %q", current.ID, "a")
	}
}

func TestQueue_Advance(t *testing.T) {
	q := NewQueue()
	q.Replace(Batch{testPlayable("a"), testPlayable("b")})

	next := q.Advance()
	if next == nil || next.ID != "b" {
		t.Fatalf("Advance() = %v, want playable b", next)
	}

	if end := q.Advance(); end != nil {
		t.Errorf("Advance() past end = %v, want nil", end)
	}
}

func TestQueue_Empty(t *testing.T) {
	q := NewQueue()

	if !q.IsEmpty() {
		t.Error("IsEmpty() = false for new queue")
	}
	if q.Current() != nil {
		t.Error("Current() != nil for empty queue")
	}
	if q.Advance() != nil {
		t.Error("Advance() != nil for empty queue")
	}
}

func TestQueue_Clear(t *testing.T) {
	q := NewQueue()
	q.Replace(Batch{testPlayable("a")})
	q.Clear()

	if !q.IsEmpty() {
		t.Error("IsEmpty() = false after Clear")
	}
}

func TestQueue_ListIsCopy(t *testing.T) {
	q := NewQueue()
	q.Replace(Batch{testPlayable("a"), testPlayable("b")})

	list := q.List()
	list[0].ID = "mutated"

	if current := q.Current(); current.ID != "a" {
		t.Errorf("Current().ID = %q after mutating List() copy, want %q", current.ID, "a")
	}
}
