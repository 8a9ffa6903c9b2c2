package signals_test

import (
	"fmt"

	"github.com/delaneyj/slotparty/signals"
)

func ExampleSignal() {
	var saved signals.Signal[string]

	first := saved.Connect(func(name string) {
		fmt.Println("first:", name)
	})
	defer first.Disconnect()

	second := saved.Connect(func(name string) {
		fmt.Println("second:", name)
	})
	defer second.Disconnect()

	saved.Emit("notes.txt")
	// Output:
	// second: notes.txt
	// first: notes.txt
}

func ExampleConnection_Disconnect() {
	var tick signals.Signal[int]

	var conn *signals.Connection[int]
	conn = tick.Connect(func(n int) {
		fmt.Println("tick", n)
		if n == 2 {
			conn.Disconnect()
		}
	})

	for i := 1; i <= 3; i++ {
		tick.Emit(i)
	}
	// Output:
	// tick 1
	// tick 2
}

func ExampleSignal2() {
	var moved signals.Signal2[int, int]
	moved.ConnectOnce(func(x, y int) {
		fmt.Printf("moved to %d,%d\n", x, y)
	})

	moved.Emit(3, 4)
	moved.Emit(5, 6)
	// Output: moved to 3,4
}
