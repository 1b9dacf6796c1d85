// Package classifier proposes one Operation per filesystem entry.
//
// Classification looks at a single entry and the immutable pattern set; it
// never consults other entries. The first applicable rule wins:
//
//  1. name matches a remove pattern → Delete(regex)
//  2. file name matches a remove_hash pattern and its digest is listed →
//     Delete("regex:digest")
//  3. cleanup patterns change the name → Rename(new name), or MoveToParent
//     for a directory whose name becomes empty, or Delete("<EMPTY_NAME>")
//     for anything else whose name becomes empty
//  4. directory with no children → Delete("<EMPTY_DIR>")
//  5. otherwise None
//
// Digest failures (unreadable file, size limit) count as no match.
// ClassifyAll fans classification out over a bounded worker pool and returns
// once every entry has been classified.
package classifier
