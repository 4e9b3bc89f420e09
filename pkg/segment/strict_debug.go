//go:build segmentdebug

package segment

const strictInvariants = true
