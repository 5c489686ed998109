package rolltable

const fixtureMetadata = `
metadata:
  headers:
    - Header 1
    - Header 2
    - Header 3
  die: 10
  frequencies:
    default:
      Option 1: 0.3
      Option 2: 0.5
      Option 3: 0.2
    nondefault:
      Option 1: 0.0
      Option 2: 0.1
      Option 3: 0.9
`

const fixtureSource = `
Option 1:
    - choice 1: description 1
    - choice 2: description 2
    - choice 3: description 3
Option 2:
    - choice 1: description 4
    - choice 2: description 5
    - choice 3: description 6
Option 3:
    - choice 1: description 7
    - choice 2: description 8
    - choice 3: description 9
`

const fixtureOneChoice = `
option 1:
    -  choice 1: description 1
`

const fixtureRepeatedChoices = `
option 1:
  - choice 1: description 1
  - choice 1: description 1
  - choice 1: description 1
`

const fixtureNoDescriptions = `
metadata:
    headers:
        - option
        - choice
option 1:
    -  choice 1
`

const fixtureCombinedA = `
A1:
  - A choice 1
  - A choice 2
  - A choice 3
A2:
  - A choice 4
  - A choice 5
  - A choice 6
A3:
  - A choice 7
  - A choice 8
  - A choice 9
`

const fixtureCombinedB = `
metadata:
    headers:
        - HeaderB
        - HeaderB_Choice
B1:
  - B choice 1
B2:
  - B choice 2
B3:
  - B choice 3
`

const fixtureNoOptions = `
metadata:
    headers:
        - headerA
        - headerB
B1:
B2:
B3:
`

const fixtureLists = `
#
# one  two  three  four
# foo  bar  baz    quz
#
metadata:
  headers:
    - one
    - two
    - three
    - four
foo:
  - bar:
    - baz
    - quz
`

const fixtureMapping = `
metadata:
  headers: [Kind, Name, Detail]
Weapon:
  sword: sharp
  bow: [ranged, quiet]
`

const fixtureExcluded = `
metadata:
  headers: [Option, ~, Description]
Loot:
  - coin: a single copper
`

const fixtureWeighted = `
metadata:
  frequencies:
    default:
      A: 0
      B: 1
A:
  - never
B:
  - always
`
