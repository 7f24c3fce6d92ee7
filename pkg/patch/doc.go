// Package patch defines the narrow contract the core calls to materialise
// a Layout into game assets. The core never touches the proprietary game
// image itself; it calls a Patcher once per Check with the Layout-resolved
// Item and a Descriptor saying where that Check lives in the image.
package patch
