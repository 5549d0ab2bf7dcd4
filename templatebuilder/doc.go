// Package templatebuilder runs the same Zielonka recursion as
// paritysolver, but records the strategy-template artifacts the
// recursion witnesses along the way: co-live edges where player 0 visits
// a region it must eventually stop returning to, and live groups
// witnessing the infinitely-often obligations that make a winning
// strategy work at all (Game.hpp's recursive_strategy_template_parity
// and find_live_groups_reach).
package templatebuilder
