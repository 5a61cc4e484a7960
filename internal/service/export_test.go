package service

import "time"

// SetTimer replaces the timer source of s and the longest single wait it performs
func (s *Scheduler) SetTimer(after func(time.Duration) <-chan time.Time, maxWait time.Duration) {
	s.after = after
	s.maxWait = maxWait
}
