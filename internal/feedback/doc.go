// Package feedback collects user corrections in a bounded queue and submits
// them as one corpus once the queue is full. Pending corrections can be kept
// in a SQLite store so that they survive restarts.
package feedback
