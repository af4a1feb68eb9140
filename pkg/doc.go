// Package filecleaner deduplicates files within a single directory: every
// regular file is bucketed by a grouping key decoded from its leading
// bytes, files sharing a key are compared byte-for-byte, and confirmed
// duplicates are deleted keeping exactly one representative per distinct
// content.
//
// # Core API
//
// The main entry point is Engine, which runs one sequential scan pass:
//
//	paths, err := filecleaner.ListDirectory("/path/to/dir")
//	engine := filecleaner.NewEngine(filecleaner.Options{SizeHint: len(paths)})
//	engine.Run(paths)
//	fmt.Printf("scanned %d, deleted %d\n", engine.Scanned(), engine.Deleted())
//
// # Duplicate reports
//
// After a run (typically a dry run) the engine can report what it found:
//
//	groups := engine.DuplicateGroups()
//	for _, group := range groups {
//		fmt.Printf("key %#x: %v\n", group.Key, group.Files)
//	}
//
// # Configuration
//
// Enable diagnostic output:
//
//	filecleaner.SetVerboseLevel(2)
//	filecleaner.SetDebugFlags("scan,compare")
//
// Key extraction is deliberately not a hash: files with identical leading
// bytes but different tails land in the same bucket and are told apart by
// a full comparison. The key width defaults to the native word width and
// is tunable through the configuration file.
package filecleaner
