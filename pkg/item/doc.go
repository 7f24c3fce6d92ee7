// Package item defines the closed enumeration of every placeable item and
// the derived queries the fill algorithm and spoiler serializer need:
// progression status, dungeon scoping, sword/ore membership, and the
// rental/duplicate normalization table.
package item
