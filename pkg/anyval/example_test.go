package anyval

import "fmt"

func ExampleOf() {
	m := message{n: 5}
	h := Of(&m)

	fmt.Println(h.TypeName())
	fmt.Println(h)
	// Output:
	// anyval.message
	// {n:5}
}

func ExampleRef() {
	m := message{n: 11}
	h := Of(&m)

	if got, ok := Ref[message](h); ok {
		fmt.Println(got.n)
	}
	if _, ok := Ref[int](h); !ok {
		fmt.Println("not an int")
	}
	// Output:
	// 11
	// not an int
}

func ExampleDowncast() {
	b := NewBox(message{n: 14})

	// The wrong guess costs nothing: the box is handed back intact.
	if _, err := Downcast[int](b); err != nil {
		fmt.Println(err)
	}
	got, _ := Downcast[message](b)
	fmt.Println(got.n)
	fmt.Println(b.TypeName())
	// Output:
	// type mismatch
	// 14
	// <released>
}
