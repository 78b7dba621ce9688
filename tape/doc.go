// Package tape describes edits to a keyed collection as replayable records.
//
// A router emits its result as a sequence of Items; a consumer applies them
// to its own state with a Player, and can undo them by rewinding in reverse
// order. Every Item carries enough information to be reverted: Add keeps the
// value it replaced, Remove keeps the value it deleted.
//
// Kinds:
//
//	Add          set Key to Value; rewind restores Previous (or deletes Key)
//	Remove       delete Key; rewind puts Value back
//	Move         move Value from Key to To; rewind moves it back
//	BatchAdd     Add for every entry of Batch
//	BatchRemove  Remove for every entry of Batch
//
// MapPlayer applies Items to a plain Go map. Recording, persisting and
// redo stacks are left to callers.
package tape
