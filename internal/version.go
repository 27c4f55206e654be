package internal

// Version is the banglahindi release version.
const Version = "0.3.0"
