// Package core carries combinator options through a context: the logger
// the loop engine reports to and the maximum number of loop steps.
// Nothing here changes what a combinator computes when no option is set.
package core
