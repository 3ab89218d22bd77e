package wild_test

import (
	"fmt"

	"github.com/wildmatch/wildmatch/pkg/wild"
)

func ExampleMatch() {
	pattern := map[string]any{"status": wild.Wildcard, "id": 7}
	value := map[string]any{"status": "ok", "id": 7}

	fmt.Println(wild.Match(pattern, value))
	// Output: true
}

func ExampleSubmatch() {
	pattern := map[string]any{"name": "alice"}
	value := map[string]any{"name": "alice", "age": 30}

	fmt.Println(wild.Submatch(pattern, value))
	fmt.Println(wild.Match(pattern, value))
	// Output:
	// true
	// false
}

func ExampleMatchIn() {
	ctx := wild.NewContext(wild.SubvecOK(true))

	fmt.Println(wild.MatchIn(ctx, []any{1, wild.Wildcard}, []any{1, 2, 3}))
	// Output: true
}

func ExampleSetMatch() {
	// The wildcard's first candidate pairing (with 3) dead-ends; the
	// search backtracks and pairs it with 1 instead.
	pattern := wild.NewSet(wild.Wildcard, 3)
	value := wild.NewSet(3, 1)

	fmt.Println(wild.SetMatch(pattern, value))
	// Output: true
}

func ExampleExplain() {
	pattern := map[string]any{"a": 1, "b": 2}
	value := map[string]any{"a": 1, "b": 3}

	report := wild.Explain(wild.DefaultContext(), pattern, value)
	for _, d := range report.Divergences {
		fmt.Printf("%s: %s\n", d.Path, d.Reason)
	}
	// Output: $.b: value mismatch
}
