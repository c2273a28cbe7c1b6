/*
Copyright © 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// provides a custom error interface and exit codes to use on the vardbpkg cli
package error

//
// Provided exit codes for vardbpkg

// To make it easy to generate them you have to respect the structure:
//
// comment that explains the error
// const NamedConstant = ERRORCODE
//
// This way the exit codes can be turned into a Markdown list of EXITCODE -> COMMENT

// The vardb root path does not exist or cannot be listed
const RootUnreadable = 10

// Error reading the configuration
const ReadingConfig = 11

// Error opening a file
const OpenFile = 12

// Error reading a file
const ReadFile = 13

// Unsupported output format or field selection
const InvalidOutput = 14

// Error encoding the output
const EncodeOutput = 15

// Unknown error
const Unknown int = 255
