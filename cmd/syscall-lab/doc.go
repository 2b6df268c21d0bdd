// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// syscall-lab is a command-line tool for exploring POSIX file descriptor
// system calls and classic Unix error reporting.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/syscall-lab/cmd/syscall-lab@latest
//
// # Usage
//
//	syscall-lab [--config FILE] [--json] [--color auto|on|off] COMMAND [ARGS]
//
// # Commands
//
//	copy SRC DST        copy a file with read(2) and write(2)
//	read FILE           one read(2) of --size bytes
//	pread FILE          one pread(2) at --offset
//	seek FILE TEXT      write TEXT backwards, seeking to the end each time
//	flags FILE          show fcntl(F_GETFL) for --mode, --append, --nonblock, --sync
//	dup                 dup, dup2 and fcntl(F_DUPFD) on standard output
//	writev FILE         gather-write a three-part record
//	readv FILE          scatter-read a three-part record
//	term                one read(2) from standard input
//	errno CODE|NAME...  look up error numbers (--all lists the table)
//	bitor N...          bitwise OR of integers
//	walk DIRS ARG...    directive-driven typed argument walk
//	getnum VALUE        numeric argument checks (--nonneg, --gt0, --base, --int)
//	report MESSAGE...   emit a diagnostic under --policy with optional --errno
//
// # Diagnostics
//
// Failures are written to standard error as
//
//	ERROR [ENOENT No such file or directory] copy missing to out
//
// followed by exit status 1. Set EF_DUMPCORE to a true value to make
// aborting diagnostics dump core instead.
//
// # Examples
//
// Copy a file:
//
//	syscall-lab copy /etc/hostname /tmp/hostname
//
// Show the table of error numbers:
//
//	syscall-lab errno --all
//
// See the abort policy with core dumps enabled:
//
//	ulimit -c unlimited
//	EF_DUMPCORE=1 syscall-lab report --policy abort --errno 5 "disk went away"
package main
