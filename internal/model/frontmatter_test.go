package model

import "testing"

func TestValueKinds(t *testing.T) {
	tests := map[string]struct {
		value      Value
		wantKind   ValueKind
		wantString string
		wantList   []string
	}{
		"scalar": {
			value:      StringValue("sonnet"),
			wantKind:   KindString,
			wantString: "sonnet",
			wantList:   []string{"sonnet"},
		},
		"empty scalar": {
			value:      StringValue(""),
			wantKind:   KindString,
			wantString: "",
			wantList:   nil,
		},
		"list": {
			value:      ListValue("Read", "Write"),
			wantKind:   KindList,
			wantString: "Read, Write",
			wantList:   []string{"Read", "Write"},
		},
		"zero value": {
			value:      Value{},
			wantKind:   KindString,
			wantString: "",
			wantList:   nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if got := tt.value.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			got := tt.value.List()
			if len(got) != len(tt.wantList) {
				t.Fatalf("List() = %v, want %v", got, tt.wantList)
			}
			for i := range got {
				if got[i] != tt.wantList[i] {
					t.Errorf("List()[%d] = %q, want %q", i, got[i], tt.wantList[i])
				}
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	if !StringValue("a").Equal(StringValue("a")) {
		t.Error("equal scalars reported unequal")
	}
	if StringValue("a").Equal(ListValue("a")) {
		t.Error("scalar and list reported equal")
	}
	if !ListValue("a", "b").Equal(ListValue("a", "b")) {
		t.Error("equal lists reported unequal")
	}
	if ListValue("a", "b").Equal(ListValue("b", "a")) {
		t.Error("lists with different order reported equal")
	}
}

func TestFrontMatterOrderAndLookup(t *testing.T) {
	fm := NewFrontMatter()
	fm.Set("name", StringValue("x"))
	fm.Set("description", StringValue("y"))
	fm.Set("tools", ListValue("Read"))

	keys := fm.Keys()
	want := []string{"name", "description", "tools"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	// Re-setting a key keeps its position
	fm.Set("name", StringValue("z"))
	if fm.Keys()[0] != "name" {
		t.Errorf("re-set moved key position: %v", fm.Keys())
	}
	if got := fm.GetString("name"); got != "z" {
		t.Errorf("GetString(name) = %q, want z", got)
	}

	if fm.GetList("tools")[0] != "Read" {
		t.Errorf("GetList(tools) = %v", fm.GetList("tools"))
	}
	if fm.Has("missing") {
		t.Error("Has(missing) = true")
	}
}

func TestFrontMatterEqualIgnoresOrder(t *testing.T) {
	a := NewFrontMatter()
	a.Set("name", StringValue("x"))
	a.Set("description", StringValue("y"))

	b := NewFrontMatter()
	b.Set("description", StringValue("y"))
	b.Set("name", StringValue("x"))

	if !a.Equal(b) {
		t.Error("mappings with same contents but different order reported unequal")
	}

	b.Set("extra", StringValue("z"))
	if a.Equal(b) {
		t.Error("mappings with different key sets reported equal")
	}
}

func TestNilFrontMatterIsSafe(t *testing.T) {
	var fm *FrontMatter

	if fm.Len() != 0 {
		t.Errorf("nil Len() = %d", fm.Len())
	}
	if fm.Has("name") {
		t.Error("nil Has() = true")
	}
	if got := fm.GetString("name"); got != "" {
		t.Errorf("nil GetString() = %q", got)
	}
	if fm.Keys() != nil {
		t.Errorf("nil Keys() = %v", fm.Keys())
	}
}
