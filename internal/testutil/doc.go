// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate.
//
// Helpers cover file setup (MustMkdirAll, MustWriteFile), home directory
// isolation (SetHomeDir, IsolateUserDirs, MustSetenv) and a fake java launcher
// (WriteFakeJava, InstallFakeJava) for exercising the process runner
// without a JDK.
package testutil
