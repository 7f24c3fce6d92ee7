// Package progress implements Progress, the accumulator of capability
// tokens a hypothetical player holds, and the domain queries ("has bow",
// "can merge", "can defeat Yuga") the logic predicates are built from.
package progress
