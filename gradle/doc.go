// Package gradle reads and writes the subset of the Gradle build-script DSL
// made of nested blocks, simple values and calls:
//
//	plugins {
//	    id 'java'
//	    id 'org.example.tool' version '1.2' apply false
//	}
//	sourceCompatibility = JavaVersion.VERSION_17
//	repositories {
//	    mavenCentral()
//	}
//	tags ['a', 'b']
//
// Each entry starts with an identifier. What follows it selects the node:
// a brace opens a [tree.Block], '=' takes the rest of the expression as a
// [tree.Assignment], parentheses make a [tree.Call], brackets an
// [tree.Array], and a string is either a [tree.String] or, when named
// arguments follow on the same line, a [tree.MultiArgs] whose "value" entry
// holds the string. Closures, method chains and other Groovy or Kotlin
// constructs are rejected with a parse error.
//
// Strings are verbatim between matching ' or " delimiters. Comments are
// accepted and dropped.
package gradle
