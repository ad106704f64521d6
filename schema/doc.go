// Package schema describes the shape of serialized data independently of any
// host language: structs with named fields and enums whose variants carry
// named fields. Fields may own a nested type, and nested types may refer back
// to their ancestors, so a Schema is a possibly cyclic graph of Nodes.
//
// A Schema can be assembled with the builders in this package, loaded from a
// YAML description file, or derived from Go struct types by reflection.
//
// # Description file
//
//	version: "1"
//	types:
//	  - name: CallbackQuery
//	    variants:
//	      - tag: ConfirmEventReservation
//	        fields: [event_id, ticket_type, user_id]
//	      - tag: Refund
//	        fields:
//	          - event_id
//	          - name: lines
//	            type: "[]Line"
//	  - name: Line
//	    fields: [sku, qty]
//
// A type with "variants" (or kind: enum) is an enum, anything else is a
// struct. Field types reference other declared types by name: "T" for a
// single value, "[]T" for a list and "map[string]T" for a map with values of
// type T. Fields without a type are scalars.
package schema
