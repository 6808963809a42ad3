// Package basiccalc implements a calculator for basic arithmetic expressions.
//
// Expressions are numbers, parentheses, and the binary operators + - * /, as
// in "(2 + 3) * 4.5". Multiplication and division bind tighter than addition
// and subtraction, and operators of equal precedence group left to right, so
// "6/3*2" is "(6/3)*2". There are no unary operators.
//
// Parsing produces a binary tree that can be evaluated any number of times.
// Numbers without a decimal point are integers of unlimited size, and integer
// arithmetic stays integral except for division, which always gives a float.
//
package basiccalc
