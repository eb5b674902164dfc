package larder

const Version = "0.3.0"
