package render

var fontCache = newFontLRU(32)
