// Package notify holds the notification request model and the dispatcher
// that turns a request into local side effects.
//
// A request names up to two independent actions: play the notification sound
// and speak the message. The dispatcher runs them in a fixed order (sound,
// then speech), never lets one action's failure abort the other, and folds
// the outcomes into a single result whose overall success requires every
// attempted action to have succeeded.
package notify
