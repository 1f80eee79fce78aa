// Package store is the embeddable inventory storage engine.
//
// A Store owns the record table (ordered by id), two secondary indexes
// (name and supplier), the encrypted data file, the audit log and an ordered
// list of change listeners.
//
// # Concurrency
//
// A Store has no internal locking. Every operation runs to completion on the
// calling goroutine and a single logical caller is assumed; concurrent use
// from several goroutines is undefined.
//
// # Listeners
//
// Listeners run synchronously, in registration order, right after a mutation
// that changed data. The first listener returning an error stops the
// remaining ones and the error is returned by the mutating call (the mutation
// itself stays applied). A listener must not mutate the same Store from
// inside its callback: re-entrant calls are not guarded and can cause double
// notifications.
//
// # Known limitations
//
//   - Update on name or supplier leaves the secondary index stale: the id
//     stays under the old key and is missing under the new one, so Search on
//     that field disagrees with a linear scan until the next Load. Set
//     Settings.RefreshIndexesOnUpdate to repair the index on update.
//   - Save rewrites the data file in place with no atomic rename; a crash
//     mid-write can corrupt it.
//   - Text fields are stored unescaped, a ';' in a name or supplier makes the
//     file unreadable on the next Load.
//   - The data file is sealed with one hardcoded key shared by the process.
package store
