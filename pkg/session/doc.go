/*
Package session owns live simulator state.

A Controller holds exactly one session in memory and serializes dispatches to
it; this is what a single trainee's UI talks to. A Manager hosts many
independent sessions in a ports.SnapshotStore, serializing access per session
with reference-counted local locks and, across replicas, an optional
ports.DistributedLocker.
*/
package session
