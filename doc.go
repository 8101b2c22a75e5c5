// Package frontdesk implements a walk-in service queue with age-derived
// priority tiers and a weighted round-robin scheduler.
//
// People are admitted into one of three tiers according to their age. Each
// call to [Desk.ServeNext] selects the next person to attend: the active tier
// is served for a bounded number of consecutive turns (a run) before the
// scheduler cedes to the next tier in fixed cyclic order, so higher tiers get
// more consecutive service without starving lower tiers.
//
// Attended people are pushed onto an attendance history which can be
// persisted to, and restored from, an append-only [Archive].
package frontdesk
