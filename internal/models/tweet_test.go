package models

import "testing"

func TestData_Len(t *testing.T) {
	var nilData *Data
	if nilData.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", nilData.Len())
	}

	d := &Data{Tweets: []Tweet{{Text: "a"}, {Text: "b"}}}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestData_Clone(t *testing.T) {
	d := &Data{Tweets: []Tweet{{UserName: "alice"}, {UserName: "bob"}}}

	c := d.Clone()
	c.Tweets[0].UserName = "carol"

	if d.Tweets[0].UserName != "alice" {
		t.Errorf("original mutated through clone: UserName = %s, want alice", d.Tweets[0].UserName)
	}

	var nilData *Data
	if got := nilData.Clone(); got == nil || got.Len() != 0 {
		t.Errorf("nil Clone() = %v, want empty collection", got)
	}
}

func TestData_ByUser(t *testing.T) {
	d := &Data{Tweets: []Tweet{
		{UserName: "alice", Text: "1"},
		{UserName: "bob", Text: "2"},
		{UserName: "alice", Text: "3"},
		{UserName: "", Text: "4"},
	}}

	groups := d.ByUser()
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}

	alice := groups["alice"]
	if len(alice) != 2 || alice[0].Text != "1" || alice[1].Text != "3" {
		t.Errorf("alice = %+v, want tweets 1 and 3 in order", alice)
	}

	if len(groups[""]) != 1 {
		t.Errorf("anonymous group = %+v, want one tweet", groups[""])
	}

	var nilData *Data
	if got := nilData.ByUser(); len(got) != 0 {
		t.Errorf("nil ByUser() = %v, want empty", got)
	}
}
