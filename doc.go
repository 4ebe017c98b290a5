//The MIT License (MIT)

//Copyright (c) 2013 didier amyot

//Permission is hereby granted, free of charge, to any person obtaining a copy
//of this software and associated documentation files (the "Software"), to deal
//in the Software without restriction, including without limitation the rights
//to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
//copies of the Software, and to permit persons to whom the Software is
//furnished to do so, subject to the following conditions:

//The above copyright notice and this permission notice shall be included in
//all copies or substantial portions of the Software.

//THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
//IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
//FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
//AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
//LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
//OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
//THE SOFTWARE.

/*
Package paillier implements encrypted integer counters over the Paillier
additively-homomorphic cryptosystem. See
http://en.wikipedia.org/wiki/Paillier_cryptosystem for an introduction.

A Counter is a ciphertext under a PublicKey that can be incremented,
decremented, multiplied by a constant, added to or subtracted from another
counter, duplicated, and compared against another counter — all without the
plaintext ever appearing. Only GenerateKeyPair's matching PrivateKey can
decrypt a counter back to its integer value.

Decryption and the blinded comparison in compare.go use the Chinese
Remainder Theorem over the private key's two prime factors to avoid a full
exponentiation modulo n², following the CRT-acceleration techniques this
package's generator-selection and L-function helpers in primitives.go are
built around.

Keys and counters serialize losslessly to hexadecimal text (hexcodec.go);
the bsonkey subpackage adds a supplemental BSON codec for embedding either
in a MongoDB document.
*/
package paillier
