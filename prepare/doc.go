// SPDX-License-Identifier: EPL-2.0

// Package prepare sets up the dataset tree used for wake-word training.
//
// It creates the positive, negative and background directories, downloads
// public corpora into them and unpacks the archives. Positive samples are
// recorded by hand and never downloaded.
package prepare
