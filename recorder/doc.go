// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package recorder handles recording and playback of user input. A recording
// (or transcript) is a text file listing every change to the keypad along
// with the cycle at which the change was latched and a digest of the video
// output at that moment.
//
// The Recorder type wraps another hardware.Input and records every change in
// the keys reported by it. The Playback type is a hardware.Input that reports
// the keys found in a transcript.
//
// During playback, the video digest is compared with the digest in the
// transcript. A mismatch means that the emulation is not behaving as it did
// when the recording was made and the playback ends with a PlaybackHashError.
//
// The random number seed is stored in the transcript. Programs that use the
// RND instruction will only play back correctly if the same seed is used.
package recorder
