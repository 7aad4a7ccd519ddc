package firsterr_test

import (
	"fmt"
	"slices"

	g "github.com/anacrolix/generics"

	"github.com/anacrolix/firsterr"
)

func ExampleOrElse() {
	items := []g.Result[int]{{Ok: 0}, {Ok: 1}, {Ok: 2}}
	sum, err := firsterr.OrElse(firsterr.Results(slices.Values(items)), func(it *firsterr.Iter[int]) (sum int) {
		for v := range it.Values() {
			sum += v
		}
		return
	})
	fmt.Println(sum, err)
	// Output: 3 <nil>
}

func ExampleOrElse_withError() {
	items := []g.Result[int]{{Ok: 0}, {Err: fmt.Errorf("bad at 1")}, {Err: fmt.Errorf("bad at 2")}}
	_, err := firsterr.OrElse(firsterr.Results(slices.Values(items)), func(it *firsterr.Iter[int]) (sum int) {
		for v := range it.Values() {
			sum += v
		}
		return
	})
	fmt.Println(err)
	// Output: bad at 1
}

func ExampleOr() {
	items := []g.Result[int]{{Ok: 0}, {Err: fmt.Errorf("bad at 1")}}
	_, err := firsterr.Or(firsterr.Results(slices.Values(items)), "ignored")
	fmt.Println(err)
	// Output: bad at 1
}

// Layered results reduce without collecting either layer.
func ExampleOrTry() {
	items := []g.Result[g.Result[int]]{
		{Ok: g.Result[int]{Ok: 0}},
		{Ok: g.Result[int]{Err: fmt.Errorf("inner bad at 1")}},
		{Err: fmt.Errorf("outer bad at 2")},
	}
	_, err := firsterr.OrTry(
		firsterr.Results(slices.Values(items)),
		func(it *firsterr.Iter[g.Result[int]]) (int, error) {
			return firsterr.OrElse(firsterr.Results(it.Values()), func(it *firsterr.Iter[int]) (sum int) {
				for v := range it.Values() {
					sum += v
				}
				return
			})
		},
	)
	fmt.Println(err)
	// Output: outer bad at 2
}
