// Package encode writes truth tables to the formats named by the
// format package and reads the machine formats back.
package encode
