// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

/*
Package interactive runs the terminal recommendation session.

A session reads answers line by line from an io.Reader and writes prompts
to an io.Writer, so the CLI passes os.Stdin and os.Stdout while tests pass
strings.

# Flow

 1. The user seeds a taste profile by searching for and picking three films.
 2. Each round recommends four films from the profile of every film picked
    so far. The user picks one, asks for more (the next four from a pool of
    MorePool ranked candidates, skipping films already shown this round),
    searches manually, or skips the round.
 3. After each round the user chooses whether to continue.
 4. A summary lists the picks with their rounds, the average rating, the
    most picked genres and any director picked more than once.

Closing the input during seeding aborts with ErrInputClosed. Closing it
later ends the session normally with a summary.
*/
package interactive
