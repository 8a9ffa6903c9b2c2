// Package signals implements synchronous, reentrant signals and slots.
//
// A Signal broadcasts a value to the slots connected to it. Emission runs
// every slot, most recently connected first, on the calling goroutine before
// it returns:
//
//	var changed signals.Signal[string]
//
//	conn := changed.Connect(func(name string) {
//		fmt.Println("changed:", name)
//	})
//	defer conn.Disconnect()
//
//	changed.Emit("config.yaml")
//
// Slots are free to mutate the signal they are called from. A slot may
// disconnect itself or any other slot, move a Connection, connect new slots,
// emit the same signal again or close it. Subscribers are kept in an
// intrusive list and every emission in progress owns a cursor into it; list
// changes fix up those cursors instead of copying the subscriber list on each
// emission. As a consequence a slot that is disconnected is never invoked
// again, a moved slot is never invoked twice, and a slot connected during an
// emission is only seen by later emissions.
//
// Signals are not safe for concurrent use. Signal0, Signal2, Signal3 and
// Signal4 wrap Signal for slots with zero or several arguments.
package signals
