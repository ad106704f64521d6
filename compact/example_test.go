package compact_test

import (
	"fmt"

	"github.com/vadim-frolov/serde-compact/compact"
	"github.com/vadim-frolov/serde-compact/schema"
)

func ExampleCompact() {
	fields := func() []schema.Field {
		return []schema.Field{schema.Scalar("event_id"), schema.Scalar("ticket_type"), schema.Scalar("user_id")}
	}

	s := schema.New(schema.NewEnum("CallbackQuery",
		schema.NewVariant("CancelEventReservation", fields()...),
		schema.NewVariant("ConfirmEventReservation", fields()...),
	))

	table, err := compact.Compact(s)
	if err != nil {
		panic(err)
	}

	for name, code := range table.All() {
		fmt.Println(code, name)
	}

	// Output:
	// a CancelEventReservation
	// b ConfirmEventReservation
	// c event_id
	// d ticket_type
	// e user_id
}

func ExampleCodeAt() {
	fmt.Println(compact.CodeAt(0), compact.CodeAt(25), compact.CodeAt(26), compact.CodeAt(701), compact.CodeAt(702))

	// Output:
	// a z aa zz aaa
}
