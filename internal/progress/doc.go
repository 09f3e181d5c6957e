// Package progress implements the optional --progress live terminal
// dashboard shown while the walker (cm/internal/walker) scans a tree: files
// scanned, a duplicate-group counter, the path currently in flight, and a
// scrolling tail of log lines subscribed from cm/internal/logx. The counter
// shows Update.DuplicateGroups; cm's scan does not set that field, so it
// reads 0 during a walk.
package progress
