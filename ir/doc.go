// Package ir provides the in-memory tree representation for parsed
// savefile documents.
//
// # Overview
//
// A savefile document is represented as a tree of ir.Node values. The tree
// has three structural shapes plus typed leaves:
//
//   - ObjectType: an ordered mapping of string keys to nodes. Fields[i] is
//     the key node for the value at Values[i], so there are always the same
//     number of fields as values. Keys are unique within an object;
//     repeated sibling keys from the source are merged into an ArrayType
//     value before the object is materialized, and key order matches first
//     occurrence in the source.
//   - ArrayType: an ordered sequence of nodes. The savefile grammar has no
//     array syntax; arrays are produced only by duplicate-key merging.
//   - StringType: a scalar. Every leaf starts life as a string; the ReType
//     pass may replace it with a bool, null, number or tuple.
//
// TupleType holds a fixed-length (3 or 4 component) numeric vector produced
// by ReType from comma-separated values such as rotation quaternions.
//
// NumberType values are placed under Int64 if integral, under Float64
// otherwise.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is object
//
// Use Get for a single field lookup and Visit for pre/post order walks.
// Slash-delimited path lookup over trees lives in the treepath package.
package ir
